package classify

import "strings"

// Intent is the coarse purpose of a customer message.
type Intent string

const (
	IntentBrowsing Intent = "browsing"
	IntentOrdering Intent = "ordering"
)

// orderingKeywords signal a transactional message. Ordering takes precedence
// over browsing whenever any of these appear.
var orderingKeywords = []string{
	"order",
	"buy",
	"purchase",
	"checkout",
	"cart",
	"i'll take",
	"ill take",
	"i'll have",
	"ill have",
	"i want",
	"get me",
	"give me",
	"can i get",
	"add a",
	"add the",
}

// DetectIntent classifies the current message as browsing or ordering.
// Recent history (most recent last) is scanned as well so a customer who
// already started ordering keeps the ordering treatment on follow-ups.
func DetectIntent(message string, recent []string) Intent {
	if containsOrderingKeyword(message) {
		return IntentOrdering
	}
	for i := len(recent) - 1; i >= 0; i-- {
		if containsOrderingKeyword(recent[i]) {
			return IntentOrdering
		}
	}
	return IntentBrowsing
}

func containsOrderingKeyword(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range orderingKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
