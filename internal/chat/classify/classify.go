package classify

import (
	"regexp"
	"strings"
)

// QuestionType is the category of a menu question the deterministic
// knowledge path can answer.
type QuestionType string

const (
	QuestionDescription QuestionType = "description"
	QuestionIngredients QuestionType = "ingredients"
	QuestionAllergens   QuestionType = "allergens"
	QuestionPrice       QuestionType = "price"
	QuestionPreparation QuestionType = "preparation"
)

type patternGroup struct {
	qtype    QuestionType
	patterns []*regexp.Regexp
}

// patternGroups is evaluated in declared order; the first regex that matches
// wins. Keep the priority explicit: description, ingredients, allergens,
// price, preparation.
var patternGroups = []patternGroup{
	{
		qtype: QuestionDescription,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`tell me about (?:the )?(.+)`),
			regexp.MustCompile(`what is (?:the )?(.+)`),
			regexp.MustCompile(`describe (?:the )?(.+)`),
			regexp.MustCompile(`(?:what )?about (?:the )?(.+)`),
		},
	},
	{
		qtype: QuestionIngredients,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`what (?:are )?(?:the )?ingredients (?:in )?(?:the )?(.+)`),
			regexp.MustCompile(`(?:what )?(?:is )?(?:in )?(?:the )?(.+) (?:made )?(?:of|with)`),
			regexp.MustCompile(`(?:what )?(?:are )?(?:the )?contents (?:of )?(?:the )?(.+)`),
		},
	},
	{
		qtype: QuestionAllergens,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?:does )?(?:the )?(.+?) (?:contain|have) (?:any )?(.+)`),
			regexp.MustCompile(`(?:is )?(?:the )?(.+?) safe for (.+)`),
			regexp.MustCompile(`(?:any )?allergens (?:in )?(?:the )?(.+)`),
		},
	},
	{
		qtype: QuestionPrice,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`how much (?:does |is )(?:the )?(.+?)(?: cost)?$`),
			regexp.MustCompile(`(?:what )?(?:is )?(?:the )?price (?:of )?(?:the )?(.+)`),
			regexp.MustCompile(`how much for (?:the )?(.+)`),
		},
	},
	{
		qtype: QuestionPreparation,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`how long (?:does )?(?:the )?(.+?) takes?`),
			regexp.MustCompile(`(?:what )?(?:is )?(?:the )?preparation time (?:for )?(?:the )?(.+)`),
			regexp.MustCompile(`how long to make (?:the )?(.+)`),
		},
	},
}

// Classify maps a free-text message to a question type and candidate item
// name. The message is lower-cased first, so classification is
// case-insensitive and deterministic. Returns ok=false when no pattern
// matches and the message should proceed to the generative path.
func Classify(message string) (QuestionType, string, bool) {
	lower := strings.ToLower(strings.TrimSpace(message))
	if lower == "" {
		return "", "", false
	}

	for _, group := range patternGroups {
		for _, pattern := range group.patterns {
			m := pattern.FindStringSubmatch(lower)
			if m == nil {
				continue
			}
			item := strings.TrimSpace(m[1])
			if item == "" {
				continue
			}
			return group.qtype, item, true
		}
	}
	return "", "", false
}

// QuestionTypes lists every classifiable question type, in priority order.
// Cache invalidation iterates this to clear all per-item entries.
func QuestionTypes() []QuestionType {
	types := make([]QuestionType, 0, len(patternGroups))
	for _, g := range patternGroups {
		types = append(types, g.qtype)
	}
	return types
}
