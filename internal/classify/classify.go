// Package classify maps free-text item descriptions and advisory hints onto
// the animal-category taxonomy and produces the display-ready grouping.
package classify

import (
	"strings"

	"github.com/crabe/delivnote/internal/domain"
)

// keywordTable pairs each fixed category (excluding autres) with the
// substrings that place a description in it. Iteration order is significant:
// the first matching category wins.
var keywordTable = []struct {
	category domain.Category
	keywords []string
}{
	{domain.Dog, []string{
		"chien", "canin", "dog", "chienne", "puppy", "pedigree", "dog chow", "doggy",
	}},
	{domain.Cat, []string{
		"chat", "feline", "cat", "chaton", "kitten", "whiskas", "felix", "royal canin cat",
	}},
	{domain.Fish, []string{
		"poisson", "fish", "aquarium", "tetra", "pond", "aquatic", "koi", "marine",
	}},
	{domain.Bird, []string{
		"bird", "oiseau", "perruche", "canari", "volaille", "poultry",
	}},
	{domain.Rodent, []string{
		"hamster", "rongeur", "lapin", "rabbit", "gerbil", "cochon d'inde",
		"guinea pig", "chinchilla", "rat", "souris", "furet",
	}},
	{domain.Reptile, []string{
		"reptile", "serpent", "iguane", "tortue", "dragon",
	}},
	{domain.Farm, []string{
		"bovin", "ovins", "porc", "poule", "cheval", "equine", "equidé",
		"veau", "calf", "cow", "horse", "sheep", "goat",
	}},
}

// synonyms maps alternate spellings of a hint to their fixed category.
var synonyms = map[string]domain.Category{
	"canine": domain.Dog,
	"canin":  domain.Dog,
	"feline": domain.Cat,
	"félin":  domain.Cat,
	"equine": domain.Farm,
	"equidé": domain.Farm,
	"cheval": domain.Farm,
	"equid":  domain.Farm,
	"bovins": domain.Farm,
}

// fixedByLabel resolves a hint that names a fixed category exactly. Autres is
// deliberately absent: the validator substitutes "autres" for a missing hint,
// so it marks the absence of a real guess and must not short-circuit the
// keyword heuristics.
var fixedByLabel = func() map[string]domain.Category {
	m := make(map[string]domain.Category, 7)
	for _, c := range domain.FixedCategories() {
		if c == domain.Other {
			continue
		}
		m[c.Label()] = c
	}
	return m
}()

// Classify resolves an item's category. Precedence, strictly in order:
// an exact fixed-category hint, a known synonym of the hint, the first
// fixed category whose keyword list matches the lower-cased description by
// plain containment, the non-empty hint verbatim as a dynamic category, and
// finally autres. An "autres" hint is treated like no hint at all, so
// keyword matches still win and a leftover "autres" lands in Other, never in
// a dynamic bucket.
//
// Containment is deliberately unanchored (no word boundaries); it is a
// heuristic approximation, not tokenization.
func Classify(description, hint string) domain.Category {
	if c, ok := fixedByLabel[hint]; ok {
		return c
	}
	if c, ok := synonyms[hint]; ok {
		return c
	}

	lower := strings.ToLower(description)
	for _, entry := range keywordTable {
		for _, keyword := range entry.keywords {
			if strings.Contains(lower, keyword) {
				return entry.category
			}
		}
	}

	// An unrecognized but present hint keeps its own bucket rather than being
	// folded into autres.
	if hint != "" && hint != domain.Other.Label() {
		return domain.DynamicCategory(hint)
	}
	return domain.Other
}
