// Package domain defines the core delivery-note model shared by the pipeline stages.
package domain

// Item is one ordered line on a delivery note.
//
// After validation, Description is non-empty and trimmed, ExpectedQuantity is
// a non-negative number, Barcode is either "" (no code) or exactly 13 digits,
// and CategoryHint is lower-cased advisory text.
type Item struct {
	Description      string
	ExpectedQuantity float64
	Barcode          string
	CategoryHint     string
}

// Note is the aggregate root: header metadata plus the ordered item lines.
// Optional header fields use "" for absent. A validated Note always carries
// at least one item and is not mutated after construction.
type Note struct {
	Supplier     string
	Reference    string
	DeliveryDate string
	Items        []Item
}

// Bucket is one non-empty category section of a grouped note, with items in
// display order.
type Bucket struct {
	Category Category
	Items    []Item
}

// GroupedNote is the display-ready partition of a note's items: buckets in
// canonical category order, empty buckets omitted.
type GroupedNote []Bucket

// AssetMap maps a canonical 13-digit barcode to the relative path of its
// rendered image, resolved against the document's working directory.
type AssetMap map[string]string
