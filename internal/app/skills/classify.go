// internal/app/skills/classify.go
package skills

import (
	"strings"

	"github.com/dalemusser/waffle/pantry/text"
)

// folded maps the case-folded form of every known skill string to its
// category name. Built once at init; categories are visited in declaration
// order so an earlier category wins on a (latent) duplicate.
var folded = func() map[string]string {
	m := make(map[string]string)
	for _, c := range taxonomy {
		for _, s := range c.Skills {
			key := text.Fold(s)
			if _, exists := m[key]; !exists {
				m[key] = c.Name
			}
		}
	}
	return m
}()

// Classify maps a free-text skill string to a category name.
//
// Matching is a trimmed, case-insensitive exact comparison against the
// taxonomy's skill lists; no substring or fuzzy matching. Unknown skills
// map to DefaultCategory. Pure and deterministic.
func Classify(skill string) string {
	if name, ok := folded[text.Fold(strings.TrimSpace(skill))]; ok {
		return name
	}
	return DefaultCategory
}
