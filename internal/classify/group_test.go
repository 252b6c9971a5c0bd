package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crabe/delivnote/internal/apperr"
	"github.com/crabe/delivnote/internal/domain"
)

func TestGroupOrdersItemsWithinBucket(t *testing.T) {
	items := []domain.Item{
		{Description: "Zebra food", CategoryHint: "chien"},
		{Description: "Apple food", CategoryHint: "chien"},
	}

	grouped, err := Group(items)
	require.NoError(t, err)
	require.Len(t, grouped, 1)
	assert.Equal(t, domain.Dog, grouped[0].Category)
	assert.Equal(t, "Apple food", grouped[0].Items[0].Description)
	assert.Equal(t, "Zebra food", grouped[0].Items[1].Description)

	// Reversed input produces the same output.
	reversed := []domain.Item{items[1], items[0]}
	grouped2, err := Group(reversed)
	require.NoError(t, err)
	assert.Equal(t, grouped, grouped2)
}

func TestGroupSortIsCaseInsensitiveAndStable(t *testing.T) {
	items := []domain.Item{
		{Description: "banana chips", CategoryHint: "chien"},
		{Description: "BANANA chips", CategoryHint: "chien"},
		{Description: "Apple", CategoryHint: "chien"},
	}

	grouped, err := Group(items)
	require.NoError(t, err)
	require.Len(t, grouped, 1)
	descriptions := []string{
		grouped[0].Items[0].Description,
		grouped[0].Items[1].Description,
		grouped[0].Items[2].Description,
	}
	// The two banana entries compare equal case-insensitively, so they keep
	// their input order.
	assert.Equal(t, []string{"Apple", "banana chips", "BANANA chips"}, descriptions)
}

func TestGroupCategoryDisplayOrder(t *testing.T) {
	items := []domain.Item{
		{Description: "Produit mystère"},                       // autres
		{Description: "Granulés", CategoryHint: "insecte"},     // dynamic
		{Description: "Graines tournesol", CategoryHint: "oiseau"},
		{Description: "Whiskas"},                               // chat by keyword
		{Description: "Foin", CategoryHint: "araignée"},        // second dynamic
	}

	grouped, err := Group(items)
	require.NoError(t, err)

	var labels []string
	for _, bucket := range grouped {
		labels = append(labels, bucket.Category.Label())
	}
	// Fixed categories in canonical order, dynamic labels in first-seen
	// order, autres last.
	assert.Equal(t, []string{"chat", "oiseau", "insecte", "araignée", "autres"}, labels)
}

func TestGroupEmptyInput(t *testing.T) {
	_, err := Group(nil)
	var emptyErr *apperr.EmptyDocumentError
	require.ErrorAs(t, err, &emptyErr)
}
