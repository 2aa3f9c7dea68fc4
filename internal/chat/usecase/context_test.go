package usecase

import (
	"strings"
	"testing"

	"restaurant-ai-service/internal/chat/classify"
	"restaurant-ai-service/internal/model"
)

func TestBuildSystemPrompt(t *testing.T) {
	rest := testRestaurant()
	rest.CuisineType = "Bakery"
	rest.Avatar.Personality = "warm and upbeat"
	categories := []model.MenuCategory{{ID: "cat-1", Name: "Cookies"}}
	items := testItems()
	items[0].CategoryID = "cat-1"
	items[1].CategoryID = "cat-1"

	t.Run("Includes Identity And Menu Facts", func(t *testing.T) {
		got := buildSystemPrompt(rest, categories, items, "")
		for _, want := range []string{
			"You are Maya, the assistant at Crumbl.",
			"warm and upbeat",
			"COOKIES:",
			"- Boneless ($3.99) [SIGNATURE]",
			"- OG ($4.49)",
			"Only state facts that appear in this prompt.",
		} {
			if !strings.Contains(got, want) {
				t.Fatalf("prompt missing %q:\n%s", want, got)
			}
		}
	})

	t.Run("Override Replaces Persona But Keeps Menu", func(t *testing.T) {
		got := buildSystemPrompt(rest, categories, items, "You are a pirate.")
		if !strings.Contains(got, "You are a pirate.") {
			t.Fatalf("override not applied:\n%s", got)
		}
		if strings.Contains(got, "warm and upbeat") {
			t.Fatalf("persona survived override:\n%s", got)
		}
		if !strings.Contains(got, "- OG ($4.49)") || !strings.Contains(got, "Only state facts") {
			t.Fatalf("menu or fidelity rule dropped:\n%s", got)
		}
	})

	t.Run("Empty Menu", func(t *testing.T) {
		got := buildSystemPrompt(rest, nil, nil, "")
		if !strings.Contains(got, "Menu information not available.") {
			t.Fatalf("got:\n%s", got)
		}
	})
}

func TestAssembleMessages(t *testing.T) {
	// Stored newest first, as the repository returns it.
	history := []model.Message{
		{Sender: model.SenderAssistant, Content: "We have cookies!"},
		{Sender: model.SenderCustomer, Content: "what do you have"},
	}

	t.Run("History Oldest First Then Current", func(t *testing.T) {
		got := assembleMessages(history, "how much is the OG", classify.IntentBrowsing)
		if len(got) != 3 {
			t.Fatalf("got %d messages", len(got))
		}
		if got[0].Role != "user" || got[0].Content != "what do you have" {
			t.Fatalf("first = %+v", got[0])
		}
		if got[1].Role != "assistant" {
			t.Fatalf("second = %+v", got[1])
		}
		if !strings.HasPrefix(got[2].Content, "how much is the OG") {
			t.Fatalf("current = %+v", got[2])
		}
		if !strings.Contains(got[2].Content, "browsing") {
			t.Fatalf("browsing directive missing: %q", got[2].Content)
		}
	})

	t.Run("Ordering Intent Switches Directive", func(t *testing.T) {
		got := assembleMessages(nil, "I'll take two OGs", classify.IntentOrdering)
		if !strings.Contains(got[0].Content, "ready to order") {
			t.Fatalf("ordering directive missing: %q", got[0].Content)
		}
	})
}

func TestRecentContents(t *testing.T) {
	history := []model.Message{
		{Sender: model.SenderCustomer, Content: "second"},
		{Sender: model.SenderAssistant, Content: "reply"},
		{Sender: model.SenderCustomer, Content: "first"},
	}
	got := recentContents(history)
	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Fatalf("got %v", got)
	}
}
