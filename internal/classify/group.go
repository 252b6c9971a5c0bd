package classify

import (
	"sort"
	"strings"

	"github.com/crabe/delivnote/internal/apperr"
	"github.com/crabe/delivnote/internal/domain"
)

// Group partitions items into category buckets and orders everything for
// display: the seven fixed categories in canonical order first, then dynamic
// categories in first-seen order, then autres last. Within a bucket, items
// sort by case-insensitive description; ties keep their input order (the sort
// is stable so identical input always yields identical output).
//
// An empty result is only possible when items was empty, which upstream
// validation already rejects; it is still reported as EmptyDocumentError.
func Group(items []domain.Item) (domain.GroupedNote, error) {
	byLabel := make(map[string][]domain.Item)
	categories := make(map[string]domain.Category)
	var dynamicOrder []string

	for _, item := range items {
		c := Classify(item.Description, item.CategoryHint)
		if _, seen := categories[c.Label()]; !seen {
			categories[c.Label()] = c
			if !c.IsFixed() {
				dynamicOrder = append(dynamicOrder, c.Label())
			}
		}
		byLabel[c.Label()] = append(byLabel[c.Label()], item)
	}

	var grouped domain.GroupedNote
	appendBucket := func(c domain.Category) {
		bucket := byLabel[c.Label()]
		if len(bucket) == 0 {
			return
		}
		sort.SliceStable(bucket, func(i, j int) bool {
			return strings.ToLower(bucket[i].Description) < strings.ToLower(bucket[j].Description)
		})
		grouped = append(grouped, domain.Bucket{Category: c, Items: bucket})
	}

	for _, c := range domain.FixedCategories() {
		if c == domain.Other {
			continue
		}
		appendBucket(c)
	}
	for _, label := range dynamicOrder {
		appendBucket(categories[label])
	}
	appendBucket(domain.Other)

	if len(grouped) == 0 {
		return nil, &apperr.EmptyDocumentError{}
	}
	return grouped, nil
}
