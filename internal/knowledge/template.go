package knowledge

import (
	"fmt"
	"strings"

	"restaurant-ai-service/internal/chat/classify"
	"restaurant-ai-service/internal/model"
)

// Answer fills the fixed template for a question type from the item record.
// Every fact in the output comes verbatim from the item; nothing is
// paraphrased or inferred. A missing field yields the honest fallback prose
// for that question type. Returns ok=false for unknown question types.
func Answer(qtype classify.QuestionType, item model.MenuItem) (string, bool) {
	switch qtype {
	case classify.QuestionDescription:
		desc := strings.TrimSpace(item.Description)
		var b strings.Builder
		fmt.Fprintf(&b, "%s - %s", item.Name, desc)
		// Descriptions are stored without terminal punctuation.
		if desc != "" && !strings.HasSuffix(desc, ".") && !strings.HasSuffix(desc, "!") && !strings.HasSuffix(desc, "?") {
			b.WriteString(".")
		}
		if item.Price > 0 {
			fmt.Fprintf(&b, " This delicious item is priced at $%.2f.", item.Price)
		}
		if item.IsSignature {
			b.WriteString(" This is one of our signature items!")
		}
		return b.String(), true

	case classify.QuestionIngredients:
		if len(item.Ingredients) > 0 {
			return fmt.Sprintf("The %s contains: %s.", item.Name, strings.Join(item.Ingredients, ", ")), true
		}
		return fmt.Sprintf("I don't have the specific ingredient list for %s available right now.", item.Name), true

	case classify.QuestionAllergens:
		if len(item.Allergens) > 0 {
			return fmt.Sprintf(
				"The %s contains the following allergens: %s. Please let us know if you have any specific allergies!",
				item.Name, strings.Join(item.Allergens, ", "),
			), true
		}
		return fmt.Sprintf("I don't have specific allergen information for %s. Please let our staff know about any allergies.", item.Name), true

	case classify.QuestionPrice:
		if item.Price > 0 {
			return fmt.Sprintf("The %s costs $%.2f.", item.Name, item.Price), true
		}
		return fmt.Sprintf("I don't have the current price for %s. Please check with our staff.", item.Name), true

	case classify.QuestionPreparation:
		if item.PreparationMins > 0 {
			return fmt.Sprintf("The %s takes approximately %d minutes to prepare.", item.Name, item.PreparationMins), true
		}
		return fmt.Sprintf("I don't have the specific preparation time for %s.", item.Name), true
	}

	return "", false
}
