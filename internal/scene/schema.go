package scene

import (
	"bytes"
	"encoding/json"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaFile = "scene.schema.json"

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

// documentSchema compiles the embedded schema on first use.
func documentSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		raw, err := schemaFS.ReadFile(schemaFile)
		if err != nil {
			schemaErr = err
			return
		}
		schema, schemaErr = jsonschema.CompileString(schemaFile, string(raw))
	})
	return schema, schemaErr
}

// Validate checks raw JSON against the scene document schema.
func Validate(raw []byte) error {
	s, err := documentSchema()
	if err != nil {
		return err
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return &MalformedDocumentError{Reason: "invalid JSON", Err: err}
	}
	if err := s.Validate(v); err != nil {
		return &MalformedDocumentError{Reason: "schema validation failed", Err: err}
	}
	return nil
}
