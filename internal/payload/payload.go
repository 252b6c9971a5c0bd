// Package payload turns the raw extraction JSON (from the vision model or a
// structured file) into a validated domain.Note. It is the single entry point
// into the typed model: malformed input is rejected here, before any
// classification or rendering work happens.
package payload

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/crabe/delivnote/internal/apperr"
	"github.com/crabe/delivnote/internal/domain"
	"github.com/crabe/delivnote/internal/ean"
)

// RawNote mirrors the extraction payload schema. Pointer and any-typed fields
// tolerate the nulls and loosely typed values vision models produce; FromRaw
// owns coercion and rejection.
type RawNote struct {
	Supplier     *string   `json:"supplier"`
	Reference    *string   `json:"reference"`
	DeliveryDate *string   `json:"delivery_date"`
	Items        []RawItem `json:"items"`
}

// RawItem is one unvalidated line of the extraction payload.
type RawItem struct {
	Description      *string `json:"description"`
	ExpectedQuantity any     `json:"expected_quantity"`
	EAN13            *string `json:"ean13"`
	AnimalGuess      *string `json:"animal_guess"`
}

// Decode parses data as an extraction payload and validates it into a Note.
func Decode(data []byte) (*domain.Note, error) {
	var raw RawNote
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		// An items field of the wrong shape means the payload carries no
		// usable item list; report it the same way as an absent one.
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "items" {
			return nil, apperr.Validationf("no items detected in the payload")
		}
		return nil, apperr.Validationf("invalid payload JSON: %v", err)
	}
	return FromRaw(&raw)
}

// FromRaw validates a decoded payload into an immutable Note. Every item must
// carry a non-empty description and a numerically coercible quantity; a
// present barcode must be 12 or 13 digits and is canonicalized to 13 through
// the checksum engine. A missing animal guess defaults to "autres".
func FromRaw(raw *RawNote) (*domain.Note, error) {
	if len(raw.Items) == 0 {
		return nil, apperr.Validationf("no items detected in the payload")
	}

	items := make([]domain.Item, 0, len(raw.Items))
	for i, entry := range raw.Items {
		description := strings.TrimSpace(deref(entry.Description))
		if description == "" {
			return nil, apperr.Validationf("item %d has no description", i+1)
		}

		quantity, err := coerceQuantity(entry.ExpectedQuantity)
		if err != nil {
			return nil, apperr.Validationf("invalid quantity for item %q: %v", description, err)
		}

		hint := strings.ToLower(strings.TrimSpace(deref(entry.AnimalGuess)))
		if hint == "" {
			hint = domain.Other.Label()
		}

		code := strings.TrimSpace(deref(entry.EAN13))
		if code != "" {
			code, err = ean.Canonicalize13(code)
			if err != nil {
				return nil, apperr.ValidationWrap(err, "invalid EAN13 for item %q: %v", description, err)
			}
		}

		items = append(items, domain.Item{
			Description:      description,
			ExpectedQuantity: quantity,
			Barcode:          code,
			CategoryHint:     hint,
		})
	}

	return &domain.Note{
		Supplier:     strings.TrimSpace(deref(raw.Supplier)),
		Reference:    strings.TrimSpace(deref(raw.Reference)),
		DeliveryDate: strings.TrimSpace(deref(raw.DeliveryDate)),
		Items:        items,
	}, nil
}

// coerceQuantity accepts JSON numbers and numeric strings; anything else,
// including absence, is rejected.
func coerceQuantity(v any) (float64, error) {
	switch q := v.(type) {
	case nil:
		return 0, apperr.Validationf("quantity is missing")
	case json.Number:
		f, err := q.Float64()
		if err != nil {
			return 0, apperr.Validationf("not a number: %q", q.String())
		}
		return checkQuantity(f, q.String())
	case float64:
		return checkQuantity(q, strconv.FormatFloat(q, 'f', -1, 64))
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(q), 64)
		if err != nil {
			return 0, apperr.Validationf("not a number: %q", q)
		}
		return checkQuantity(f, q)
	default:
		return 0, apperr.Validationf("not a number: %v", v)
	}
}

func checkQuantity(f float64, text string) (float64, error) {
	if f < 0 {
		return 0, apperr.Validationf("negative quantity: %s", text)
	}
	return f, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
