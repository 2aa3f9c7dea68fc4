package knowledge

import (
	"fmt"
	"strings"

	"restaurant-ai-service/internal/model"
)

// instantEntry pairs a known phrase with its reply template. Templates take
// the avatar name and restaurant name as the only arguments, so rendering
// needs no session or menu state.
type instantEntry struct {
	phrase   string
	template string
}

// instantEntries is scanned in declared order so containment matches are
// deterministic. Greetings first, then common questions, then closings.
var instantEntries = []instantEntry{
	{"hello", "Hello! Welcome to %[2]s! I'm %[1]s, your menu expert. What delicious treat can I help you find today?"},
	{"hi", "Hi there! Welcome to %[2]s! What are you craving today?"},
	{"hey", "Hey! Great to see you at %[2]s! What can I get for you today?"},
	{"good morning", "Good morning! Welcome to %[2]s! What would you like to start your day with?"},
	{"good afternoon", "Good afternoon! Welcome to %[2]s! Ready for a treat?"},
	{"good evening", "Good evening! Welcome to %[2]s! How about something delicious to end your day?"},

	{"what do you have", "We have an amazing selection! Would you like to hear about our signature items, or is there something specific you're in the mood for?"},
	{"what's popular", "Our signature items are the crowd favorites! Would you like me to tell you about them?"},
	{"what's your best seller", "Our signature items are our all-time best sellers! Would you like to try one?"},

	{"thank you", "You're very welcome! Enjoy! Have a wonderful day!"},
	{"thanks", "My pleasure! Enjoy your treats!"},
	{"bye", "Goodbye! Thanks for visiting %[2]s! Come back soon!"},
	{"goodbye", "Goodbye! It was lovely helping you today. Enjoy!"},
}

// InstantResponse answers greetings, closings and a few stock questions
// without touching any cache or the provider. Matching is exact first, then
// whole-word containment in either direction: "hi" matches "hi there",
// "morning" matches the "good morning" entry, and neither matches "ship".
// Returns ok=false when the message is not a known phrase.
func InstantResponse(restaurant model.Restaurant, message string) (string, bool) {
	normalized := Normalize(message)
	if normalized == "" {
		return "", false
	}

	for _, e := range instantEntries {
		if e.phrase == normalized {
			return renderInstant(e.template, restaurant), true
		}
	}

	padded := " " + normalized + " "
	for _, e := range instantEntries {
		paddedPhrase := " " + e.phrase + " "
		if strings.Contains(padded, paddedPhrase) || strings.Contains(paddedPhrase, padded) {
			return renderInstant(e.template, restaurant), true
		}
	}
	return "", false
}

func renderInstant(template string, restaurant model.Restaurant) string {
	if !strings.Contains(template, "%") {
		return template
	}
	return fmt.Sprintf(template, restaurant.AvatarName(), restaurant.Name)
}
