package rating

import (
	"log/slog"
	"slices"

	"github.com/imsidplayer/sidratings/internal/history"
	"github.com/samber/lo"
)

// Filename is the rating store read by the player.
const Filename = "rating.json"

// Map holds the best rating seen for each metadata hash.
type Map map[int64]int64

// Extract collects ratings from history records. Records missing either
// field, with a field that is not an integer, or with a rating <= 0 are
// skipped. When a hash is rated more than once the highest rating wins.
func Extract(records []history.Record) Map {
	ratings := make(Map)
	for i, r := range records {
		rawHash, ok := r.Get(history.HashKey)
		if !ok {
			continue
		}
		rawRating, ok := r.Get(history.RatingKey)
		if !ok {
			continue
		}

		hash, err := Coerce(rawHash)
		if err != nil {
			slog.Debug("skipping entry", "index", i, "field", history.HashKey, "value", string(rawHash))
			continue
		}
		value, err := Coerce(rawRating)
		if err != nil {
			slog.Debug("skipping entry", "index", i, "field", history.RatingKey, "value", string(rawRating))
			continue
		}
		if value <= 0 {
			continue
		}

		ratings.Add(hash, value)
	}
	return ratings
}

// Add records a rating, keeping the existing one unless value is higher.
func (m Map) Add(hash, value int64) {
	if current, ok := m[hash]; !ok || value > current {
		m[hash] = value
	}
}

// Hashes returns the rated hashes in ascending order.
func (m Map) Hashes() []int64 {
	hashes := lo.Keys(m)
	slices.Sort(hashes)
	return hashes
}

// Bucket is the number of tracks sharing a rating.
type Bucket struct {
	Rating int64
	Tracks int
}

// Distribution counts tracks per rating, highest rating first.
func (m Map) Distribution() []Bucket {
	counts := lo.CountValues(lo.Values(m))
	buckets := lo.MapToSlice(counts, func(r int64, n int) Bucket {
		return Bucket{Rating: r, Tracks: n}
	})
	slices.SortFunc(buckets, func(a, b Bucket) int {
		switch {
		case a.Rating > b.Rating:
			return -1
		case a.Rating < b.Rating:
			return 1
		}
		return 0
	})
	return buckets
}
