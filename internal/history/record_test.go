package history

import (
	"bytes"
	"encoding/json"
	"reflect"
	"testing"
)

func mustRecords(t *testing.T, doc string) []Record {
	t.Helper()
	var records []Record
	if err := json.Unmarshal([]byte(doc), &records); err != nil {
		t.Fatalf("Failed to unmarshal records: %v", err)
	}
	return records
}

func marshal(t *testing.T, v any) string {
	t.Helper()
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}

func TestRecordKeepsKeyOrder(t *testing.T) {
	records := mustRecords(t, `[{"zeta": 1, "alpha": {"b": 2, "a": [1, 2.50]}, "metadataHash": "12", "rating": 3}]`)

	want := []string{"zeta", "alpha", HashKey, RatingKey}
	if got := records[0].Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}

	got := marshal(t, records[0])
	wantJSON := `{"zeta":1,"alpha":{"b":2,"a":[1,2.50]},"metadataHash":"12","rating":3}`
	if got != wantJSON {
		t.Errorf("MarshalJSON() = %s, want %s", got, wantJSON)
	}
}

func TestRecordDuplicateKeys(t *testing.T) {
	records := mustRecords(t, `[{"rating": 1, "title": "x", "rating": 4}]`)

	if got := records[0].Keys(); !reflect.DeepEqual(got, []string{RatingKey, "title"}) {
		t.Errorf("Keys() = %v", got)
	}
	v, _ := records[0].Get(RatingKey)
	if string(v) != "4" {
		t.Errorf("rating = %s, want 4", v)
	}
}

func TestRecordWithout(t *testing.T) {
	records := mustRecords(t, `[{"title": "Commando", "rating": 5, "playCount": 2}]`)
	original := records[0]

	stripped := original.Without(RatingKey)
	if stripped.Has(RatingKey) {
		t.Error("Without() kept the field")
	}
	if !original.Has(RatingKey) {
		t.Error("Without() modified the original record")
	}
	if got := marshal(t, stripped); got != `{"title":"Commando","playCount":2}` {
		t.Errorf("MarshalJSON() = %s", got)
	}
}

func TestRecordNonObject(t *testing.T) {
	records := mustRecords(t, `["<b>", 12, null]`)

	for _, r := range records {
		if r.IsObject() {
			t.Errorf("Expected %s not to be an object", marshal(t, r))
		}
		if r.Has(RatingKey) || r.Len() != 0 {
			t.Errorf("Non-object record should have no fields")
		}
	}
	if got := marshal(t, records); got != `["<b>",12,null]` {
		t.Errorf("MarshalJSON() = %s", got)
	}
}

func TestNewRecord(t *testing.T) {
	r, err := NewRecord(HashKey, 42, RatingKey, "3", "title", "Delta")
	if err != nil {
		t.Fatalf("NewRecord() unexpected error: %v", err)
	}
	if got := marshal(t, r); got != `{"metadataHash":42,"rating":"3","title":"Delta"}` {
		t.Errorf("MarshalJSON() = %s", got)
	}

	if _, err := NewRecord("dangling"); err == nil {
		t.Error("Expected error for odd number of arguments")
	}
	if _, err := NewRecord(1, 2); err == nil {
		t.Error("Expected error for non-string key")
	}
}
