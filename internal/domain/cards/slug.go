package cards

import (
	"strings"
)

/*
	Publish slug helpers
	--------------------
	- Responsible ONLY for:
	  • turning a first name into the URL slug
	  • building public URLs
	- No persistence here
*/

// MakeSlug lower-cases a first name for the public URL. The name is kept
// as typed so the URL always contains it; clients escape it when linking.
// Example: "Ana María" -> "ana maría"
func MakeSlug(name string) string {
	if strings.TrimSpace(name) == "" {
		return "card"
	}
	return strings.ToLower(name)
}

// BuildPublicURL builds the shareable card URL.
// Example: ("https://indi.app", "alex", "k3x9q2") -> "https://indi.app/c/alex-k3x9q2"
func BuildPublicURL(baseURL, slug, suffix string) string {
	return strings.TrimRight(baseURL, "/") + "/c/" + slug + "-" + suffix
}
