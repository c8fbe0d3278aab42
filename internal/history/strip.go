package history

import "github.com/samber/lo"

// Strip returns a copy of records with the rating field removed from each,
// and the number of records that had one. A zero or unparsable rating still
// counts: what is counted is the presence of the field.
func Strip(records []Record) ([]Record, int) {
	out := make([]Record, 0, len(records))
	removed := 0
	for _, r := range records {
		if r.Has(RatingKey) {
			removed++
		}
		out = append(out, r.Without(RatingKey))
	}
	return out, removed
}

// CountRated returns how many records carry a rating field.
func CountRated(records []Record) int {
	return lo.CountBy(records, func(r Record) bool {
		return r.Has(RatingKey)
	})
}
