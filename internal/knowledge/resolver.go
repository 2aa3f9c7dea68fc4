package knowledge

import (
	"regexp"
	"strings"

	"restaurant-ai-service/internal/model"
)

var nonWordRe = regexp.MustCompile(`[^\w\s]`)

// Normalize lowers, trims and strips punctuation from an item name so
// "Boneless?" and "boneless" compare equal.
func Normalize(name string) string {
	return strings.TrimSpace(nonWordRe.ReplaceAllString(strings.ToLower(name), ""))
}

// ResolveItem finds the menu item a candidate name refers to. Items must be
// in menu display order and only available items are considered.
//
// Resolution order: exact normalized match first; otherwise, among items
// whose normalized name contains the candidate or vice versa, the one with
// the longest normalized name wins (most specific), display order breaking
// ties. Returns ok=false when nothing matches.
func ResolveItem(items []model.MenuItem, candidate string) (model.MenuItem, bool) {
	search := Normalize(candidate)
	if search == "" {
		return model.MenuItem{}, false
	}

	for _, item := range items {
		if !item.IsAvailable {
			continue
		}
		if Normalize(item.Name) == search {
			return item, true
		}
	}

	var best model.MenuItem
	bestLen := -1
	for _, item := range items {
		if !item.IsAvailable {
			continue
		}
		norm := Normalize(item.Name)
		if norm == "" {
			continue
		}
		if !strings.Contains(norm, search) && !strings.Contains(search, norm) {
			continue
		}
		if len(norm) > bestLen {
			best = item
			bestLen = len(norm)
		}
	}
	if bestLen < 0 {
		return model.MenuItem{}, false
	}
	return best, true
}
