package cardsapi

import (
	"indi-cards/internal/domain/access"
	"indi-cards/internal/domain/cards"
)

// ---------- requests

type UpgradeRequest struct {
	// Reference identifies the confirmed payment (a Stripe Checkout Session id).
	Reference string `json:"reference"`
}

type BioRequest struct {
	Title    string `json:"title" binding:"required"`
	Company  string `json:"company" binding:"required"`
	Keywords string `json:"keywords"`
}

// ---------- responses

type CardDTO struct {
	cards.Card
	Subscription access.Policy `json:"subscription"`
}

type CardsResponse struct {
	Cards []CardDTO `json:"cards"`
}

type ActiveCardResponse struct {
	Card      CardDTO `json:"card"`
	Persisted bool    `json:"persisted"`
}

type BioResponse struct {
	Bio string `json:"bio"`
}
