package rating

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Entry is one track in rating.json.
type Entry struct {
	MetadataHash int64 `json:"metadataHash"`
	Rating       int64 `json:"rating"`
}

// Document is the content of rating.json.
type Document struct {
	Ratings []Entry `json:"ratings"`
}

// NewDocument renders the map sorted by metadata hash.
func NewDocument(m Map) Document {
	doc := Document{Ratings: make([]Entry, 0, len(m))}
	for _, hash := range m.Hashes() {
		doc.Ratings = append(doc.Ratings, Entry{MetadataHash: hash, Rating: m[hash]})
	}
	return doc
}

const schemaURL = "rating.schema.json"

// what the player expects to find in rating.json
const documentSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["ratings"],
	"properties": {
		"ratings": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["metadataHash", "rating"],
				"properties": {
					"metadataHash": {"type": "integer"},
					"rating": {"type": "integer", "minimum": 1}
				}
			}
		}
	}
}`

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	return jsonschema.CompileString(schemaURL, documentSchema)
})

// Validate checks the document has the shape the player reads.
func (d Document) Validate() error {
	schema, err := compileSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	raw, err := json.Marshal(d)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var payload any
	if err := dec.Decode(&payload); err != nil {
		return err
	}
	if err := schema.Validate(payload); err != nil {
		return fmt.Errorf("invalid rating document: %w", err)
	}
	return nil
}
