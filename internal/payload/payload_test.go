package payload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crabe/delivnote/internal/apperr"
	"github.com/crabe/delivnote/internal/domain"
)

func TestDecodeValidPayload(t *testing.T) {
	data := []byte(`{
		"supplier": "Animalis Distribution",
		"reference": "BL-2024-118",
		"delivery_date": "2024-03-18",
		"items": [
			{"description": " Royal Canin Cat ", "expected_quantity": 3, "ean13": "123456789012", "animal_guess": ""},
			{"description": "Mystère", "expected_quantity": 1.5, "ean13": "", "animal_guess": "AUTRES "},
			{"description": "Graines", "expected_quantity": "2", "ean13": null, "animal_guess": null}
		]
	}`)

	note, err := Decode(data)
	require.NoError(t, err)

	assert.Equal(t, "Animalis Distribution", note.Supplier)
	assert.Equal(t, "BL-2024-118", note.Reference)
	assert.Equal(t, "2024-03-18", note.DeliveryDate)
	require.Len(t, note.Items, 3)

	assert.Equal(t, domain.Item{
		Description:      "Royal Canin Cat",
		ExpectedQuantity: 3,
		Barcode:          "1234567890128",
		CategoryHint:     "autres",
	}, note.Items[0])

	assert.Equal(t, 1.5, note.Items[1].ExpectedQuantity)
	assert.Empty(t, note.Items[1].Barcode)
	assert.Equal(t, "autres", note.Items[1].CategoryHint)

	// Numeric strings coerce; null ean13 and animal_guess default cleanly.
	assert.Equal(t, 2.0, note.Items[2].ExpectedQuantity)
	assert.Equal(t, "autres", note.Items[2].CategoryHint)
}

func TestDecodeRejections(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "items absent", data: `{"supplier": "X"}`},
		{name: "items empty", data: `{"items": []}`},
		{name: "items not a sequence", data: `{"items": {"description": "X"}}`},
		{name: "not json", data: `not json at all`},
		{
			name: "missing description",
			data: `{"items": [{"expected_quantity": 1}]}`,
		},
		{
			name: "blank description",
			data: `{"items": [{"description": "   ", "expected_quantity": 1}]}`,
		},
		{
			name: "missing quantity",
			data: `{"items": [{"description": "Croquettes"}]}`,
		},
		{
			name: "non-numeric quantity",
			data: `{"items": [{"description": "Croquettes", "expected_quantity": "beaucoup"}]}`,
		},
		{
			name: "negative quantity",
			data: `{"items": [{"description": "Croquettes", "expected_quantity": -2}]}`,
		},
		{
			name: "ean with letters",
			data: `{"items": [{"description": "Croquettes", "expected_quantity": 1, "ean13": "12345678901X"}]}`,
		},
		{
			name: "ean too short",
			data: `{"items": [{"description": "Croquettes", "expected_quantity": 1, "ean13": "12345"}]}`,
		},
		{
			name: "ean too long",
			data: `{"items": [{"description": "Croquettes", "expected_quantity": 1, "ean13": "12345678901234"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data))
			var verr *apperr.ValidationError
			require.ErrorAs(t, err, &verr)
		})
	}
}

func TestDecodeItemsOfWrongShapeReadsAsNoItems(t *testing.T) {
	data := []byte(`{"items": {"description": "X"}}`)
	_, err := Decode(data)
	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "no items detected in the payload", verr.Msg)
}

func TestDecodeBadBarcodeKeepsFormatError(t *testing.T) {
	data := []byte(`{"items": [{"description": "Croquettes", "expected_quantity": 1, "ean13": "12345"}]}`)
	_, err := Decode(data)

	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)

	var ferr *apperr.FormatError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, "12345", ferr.Code)
}

func TestDecodeErrorNamesTheItem(t *testing.T) {
	data := []byte(`{"items": [{"description": "Croquettes saumon", "expected_quantity": 1, "ean13": "12345"}]}`)
	_, err := Decode(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Croquettes saumon")
}
