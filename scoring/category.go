// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"fmt"
	"strings"
	"unicode"
)

// Category classifies a skill/ability for the protective-share computation.
type Category int

const (
	// CategoryOther is the default for names absent from the rubric lists.
	// It contributes to neither the protective mass nor the denominator.
	CategoryOther Category = iota
	CategoryRoutine
	CategoryPhysical
	CategoryCreative
	CategorySocial
)

func (c Category) String() string {
	switch c {
	case CategoryRoutine:
		return "routine"
	case CategoryPhysical:
		return "physical"
	case CategoryCreative:
		return "creative"
	case CategorySocial:
		return "social"
	default:
		return "other"
	}
}

// Protective reports whether the category counts toward the PCS share.
func (c Category) Protective() bool {
	return c == CategoryPhysical || c == CategoryCreative || c == CategorySocial
}

// CategoryMap maps normalized skill/ability names to their category.
type CategoryMap map[string]Category

// BuildCategoryMap constructs a CategoryMap from per-category name lists,
// as loaded from the scoring config. Category keys must be one of
// "routine", "physical", "creative", "social".
func BuildCategoryMap(lists map[string][]string) (CategoryMap, error) {
	cm := make(CategoryMap)
	for key, names := range lists {
		var cat Category
		switch strings.ToLower(key) {
		case "routine":
			cat = CategoryRoutine
		case "physical":
			cat = CategoryPhysical
		case "creative":
			cat = CategoryCreative
		case "social":
			cat = CategorySocial
		default:
			return nil, fmt.Errorf("unknown skill category %q", key)
		}
		for _, name := range names {
			cm[NormKey(name)] = cat
		}
	}
	return cm, nil
}

// Lookup returns the category for a skill/ability name, defaulting to
// CategoryOther for names not in the map.
func (cm CategoryMap) Lookup(name string) Category {
	return cm[NormKey(name)]
}

// NormKey canonicalizes a skill/ability name for map lookups: lowercase,
// punctuation removed, whitespace collapsed. Feature vectors and the rubric
// come from separately maintained datasets whose spellings drift; matching
// on the normalized form is what keeps them joined.
func NormKey(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	space := true // collapse leading whitespace too
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			space = false
		case unicode.IsSpace(r) || r == '-' || r == '_':
			if !space {
				b.WriteRune(' ')
				space = true
			}
		default:
			// punctuation: treat as a separator, same as whitespace
			if !space {
				b.WriteRune(' ')
				space = true
			}
		}
	}
	return strings.TrimRight(b.String(), " ")
}
