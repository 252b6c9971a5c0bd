package domain

// Category is an animal-category bucket. The seven fixed categories plus
// Other form a closed set with a canonical display order; an extraction hint
// that matches nothing known still produces a distinct dynamic category so
// the item is not silently folded into Other.
type Category struct {
	label string
	fixed bool
}

// Fixed categories, in canonical display order. Other always sorts last.
var (
	Dog     = Category{label: "chien", fixed: true}
	Cat     = Category{label: "chat", fixed: true}
	Fish    = Category{label: "poisson", fixed: true}
	Bird    = Category{label: "oiseau", fixed: true}
	Rodent  = Category{label: "rongeur", fixed: true}
	Reptile = Category{label: "reptile", fixed: true}
	Farm    = Category{label: "ferme", fixed: true}
	Other   = Category{label: "autres", fixed: true}
)

// FixedCategories returns the closed set in display order, Other last.
func FixedCategories() []Category {
	return []Category{Dog, Cat, Fish, Bird, Rodent, Reptile, Farm, Other}
}

// DynamicCategory builds a category from an unrecognized hint label.
func DynamicCategory(label string) Category {
	return Category{label: label}
}

// Label returns the category's display label, lower-cased.
func (c Category) Label() string { return c.label }

// IsFixed reports whether c belongs to the closed set.
func (c Category) IsFixed() bool { return c.fixed }

// IsZero reports whether c is the zero Category (no label).
func (c Category) IsZero() bool { return c.label == "" }
