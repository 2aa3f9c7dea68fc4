package usecase

import (
	"fmt"
	"strings"

	"restaurant-ai-service/internal/chat/classify"
	"restaurant-ai-service/internal/model"
	"restaurant-ai-service/pkg/llmprovider"
)

// streamHistoryLimit is the smaller context window used by the streaming
// path to keep first-token latency low.
const streamHistoryLimit = 3

// buildSystemPrompt assembles the per-restaurant system prompt: identity,
// persona, the complete current menu and the fact-fidelity instruction.
// A configured override replaces the persona section only; menu facts and
// the fidelity rule always ship.
func buildSystemPrompt(rest model.Restaurant, categories []model.MenuCategory, items []model.MenuItem, override string) string {
	var b strings.Builder

	if override != "" {
		b.WriteString(strings.TrimSpace(override))
		b.WriteString("\n")
	} else {
		fmt.Fprintf(&b, "You are %s, the assistant at %s.", rest.AvatarName(), rest.Name)
		if rest.CuisineType != "" {
			fmt.Fprintf(&b, " Cuisine: %s.", rest.CuisineType)
		}
		if rest.Description != "" {
			fmt.Fprintf(&b, " About the restaurant: %s", rest.Description)
		}
		b.WriteString("\n")
		if rest.Avatar.Personality != "" {
			fmt.Fprintf(&b, "Personality: %s\n", rest.Avatar.Personality)
		}
		if rest.Avatar.Tone != "" {
			fmt.Fprintf(&b, "Tone: %s\n", rest.Avatar.Tone)
		}
		if rest.Avatar.SpecialInstructions != "" {
			fmt.Fprintf(&b, "Special instructions: %s\n", rest.Avatar.SpecialInstructions)
		}
		b.WriteString("Keep responses short, friendly and conversational.\n")
	}

	b.WriteString("\nOUR MENU:\n")
	b.WriteString(menuSummary(categories, items))

	b.WriteString("\nIMPORTANT: Only state facts that appear in this prompt. ")
	b.WriteString("Never invent menu items, prices, ingredients or allergens. ")
	b.WriteString("If you don't know, say so and offer to check with staff. ")
	b.WriteString("Always prioritize food safety when discussing allergens and ingredients.")

	return b.String()
}

// menuSummary renders the complete menu, grouped by category, with every
// fact the assistant is allowed to state.
func menuSummary(categories []model.MenuCategory, items []model.MenuItem) string {
	if len(items) == 0 {
		return "Menu information not available.\n"
	}

	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	grouped := make(map[string][]model.MenuItem)
	var order []string
	for _, item := range items {
		key := names[item.CategoryID]
		if key == "" {
			key = "MENU"
		}
		if _, seen := grouped[key]; !seen {
			order = append(order, key)
		}
		grouped[key] = append(grouped[key], item)
	}

	var b strings.Builder
	for _, category := range order {
		fmt.Fprintf(&b, "%s:\n", strings.ToUpper(category))
		for _, item := range grouped[category] {
			fmt.Fprintf(&b, "- %s ($%.2f)", item.Name, item.Price)
			if item.IsSignature {
				b.WriteString(" [SIGNATURE]")
			}
			if item.Description != "" {
				fmt.Fprintf(&b, ": %s", item.Description)
			}
			if len(item.Ingredients) > 0 {
				fmt.Fprintf(&b, " | Ingredients: %s", strings.Join(item.Ingredients, ", "))
			}
			if len(item.Allergens) > 0 {
				fmt.Fprintf(&b, " | Contains: %s", strings.Join(item.Allergens, ", "))
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

// assembleMessages converts stored history (newest first) plus the current
// message into provider turns, oldest first, with the intent directive
// attached to the current message.
func assembleMessages(history []model.Message, current string, intent classify.Intent) []llmprovider.Message {
	messages := make([]llmprovider.Message, 0, len(history)+1)
	for i := len(history) - 1; i >= 0; i-- {
		role := "user"
		if history[i].Sender == model.SenderAssistant {
			role = "assistant"
		}
		messages = append(messages, llmprovider.Message{Role: role, Content: history[i].Content})
	}

	directive := browsingDirective
	if intent == classify.IntentOrdering {
		directive = orderingDirective
	}
	messages = append(messages, llmprovider.Message{
		Role:    "user",
		Content: current + "\n\n" + directive,
	})
	return messages
}

const (
	browsingDirective = "[The customer is browsing. Answer their question helpfully; do not push prices, totals or upsells.]"
	orderingDirective = "[The customer is ready to order. You may discuss prices and totals and suggest add-ons or pairings.]"
)

// recentContents extracts message texts from stored history for intent
// scanning, oldest first.
func recentContents(history []model.Message) []string {
	contents := make([]string, 0, len(history))
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Sender == model.SenderCustomer {
			contents = append(contents, history[i].Content)
		}
	}
	return contents
}
