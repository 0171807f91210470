package schedule

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// frenchCollator returns a case and accent insensitive French collator.
// Collators keep internal buffers, so callers must not share one across goroutines.
func frenchCollator() *collate.Collator {
	return collate.New(language.French, collate.Loose)
}

// CompareFrench compares a and b the way a French reader sorts names.
func CompareFrench(a, b string) int {
	return frenchCollator().CompareString(a, b)
}

// SortFrench sorts values in place in French order.
func SortFrench(values []string) {
	collator := frenchCollator()
	sort.SliceStable(values, func(i, j int) bool {
		return collator.CompareString(values[i], values[j]) < 0
	})
}
