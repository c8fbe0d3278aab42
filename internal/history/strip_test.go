package history

import (
	"reflect"
	"testing"
)

const scenario = `[
	{"metadataHash": 1, "rating": 5},
	{"metadataHash": 1, "rating": 2},
	{"metadataHash": 2, "rating": 0},
	{"metadataHash": 3, "rating": "4"}
]`

func TestStrip(t *testing.T) {
	records := mustRecords(t, scenario)

	stripped, removed := Strip(records)
	if removed != 4 {
		t.Errorf("removed = %d, want 4", removed)
	}
	if len(stripped) != len(records) {
		t.Fatalf("Expected %d records, got %d", len(records), len(stripped))
	}
	for i, r := range stripped {
		if r.Has(RatingKey) {
			t.Errorf("record %d still has a rating", i)
		}
		if !r.Has(HashKey) {
			t.Errorf("record %d lost its metadataHash", i)
		}
	}
	if CountRated(records) != 4 {
		t.Error("Strip() modified its input")
	}
}

func TestStripIdempotent(t *testing.T) {
	records := mustRecords(t, `[{"a": 1, "rating": 3, "b": [1]}, {"a": 2}, "raw"]`)

	once, removed := Strip(records)
	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}
	twice, removedAgain := Strip(once)
	if removedAgain != 0 {
		t.Errorf("second pass removed %d, want 0", removedAgain)
	}
	if got, want := marshal(t, twice), marshal(t, once); got != want {
		t.Errorf("Strip() not idempotent:\n got %s\nwant %s", got, want)
	}
}

func TestStripUnratedUnchanged(t *testing.T) {
	records := mustRecords(t, `[{"title": "Lightforce", "metadataHash": 9, "playCount": 3}]`)

	stripped, removed := Strip(records)
	if removed != 0 {
		t.Errorf("removed = %d, want 0", removed)
	}
	if !reflect.DeepEqual(stripped[0].Keys(), records[0].Keys()) {
		t.Errorf("Keys() = %v, want %v", stripped[0].Keys(), records[0].Keys())
	}
	if got, want := marshal(t, stripped), marshal(t, records); got != want {
		t.Errorf("Strip() = %s, want %s", got, want)
	}
}

func TestStripEmpty(t *testing.T) {
	stripped, removed := Strip(nil)
	if removed != 0 || len(stripped) != 0 {
		t.Errorf("Strip(nil) = %v, %d", stripped, removed)
	}
	if stripped == nil {
		t.Error("Strip(nil) should return an empty, non-nil slice")
	}
}
