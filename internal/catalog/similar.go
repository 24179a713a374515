package catalog

import (
	"github.com/hbollon/go-edlib"
)

// SimilarityThreshold is the Jaro-Winkler score at which two titles are
// reported as likely duplicates.
const SimilarityThreshold = 0.90

// SimilarTitles returns titles from existing that look like duplicates of
// title. It only produces hints; adding a similar title is never rejected.
func SimilarTitles(title string, existing []*Entry) []string {
	target := fold(title)
	if target == "" {
		return nil
	}

	var similar []string
	for _, e := range existing {
		score := edlib.JaroWinklerSimilarity(target, fold(e.Title))
		if float64(score) >= SimilarityThreshold {
			similar = append(similar, e.Title)
		}
	}
	return similar
}
