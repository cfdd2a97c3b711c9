package stripe

import "strings"

// Checkout status as this app reads it: paid|pending|unpaid|expired
const (
	CheckoutPaid    = "paid"
	CheckoutPending = "pending"
	CheckoutUnpaid  = "unpaid"
	CheckoutExpired = "expired"
)

// NormalizeCheckoutStatus folds Stripe's session status and payment status
// into one value.
func NormalizeCheckoutStatus(sessionStatus, paymentStatus string) string {
	sessionStatus = strings.TrimSpace(sessionStatus)
	paymentStatus = strings.TrimSpace(paymentStatus)

	if sessionStatus == "expired" {
		return CheckoutExpired
	}
	switch paymentStatus {
	case "paid", "no_payment_required":
		if sessionStatus == "complete" {
			return CheckoutPaid
		}
		return CheckoutPending
	case "unpaid":
		if sessionStatus == "open" {
			return CheckoutPending
		}
		return CheckoutUnpaid
	default:
		return CheckoutPending
	}
}
