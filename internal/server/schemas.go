package server

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Request bodies are validated against JSON schemas before any handler
// logic runs, mirroring how worker inputs are schema-checked upstream of
// processing.

const analyzeRequestSchema = `{
	"type": "object",
	"required": ["utterance"],
	"properties": {
		"utterance": {"type": "string"},
		"session_id": {"type": "string"},
		"history": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["role", "content"],
				"properties": {
					"role": {"type": "string"},
					"content": {"type": "string"}
				}
			}
		}
	},
	"additionalProperties": false
}`

const detectRequestSchema = `{
	"type": "object",
	"required": ["text"],
	"properties": {
		"text": {"type": "string"},
		"session_id": {"type": "string"}
	},
	"additionalProperties": false
}`

const pinLanguageRequestSchema = `{
	"type": "object",
	"required": ["language"],
	"properties": {
		"language": {"type": "string", "enum": ["en", "sw"]}
	},
	"additionalProperties": false
}`

var (
	analyzeSchema     = gojsonschema.NewStringLoader(analyzeRequestSchema)
	detectSchema      = gojsonschema.NewStringLoader(detectRequestSchema)
	pinLanguageSchema = gojsonschema.NewStringLoader(pinLanguageRequestSchema)
)

func validateJSON(schema gojsonschema.JSONLoader, body []byte) error {
	result, err := gojsonschema.Validate(schema, gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("invalid request: %s", strings.Join(msgs, "; "))
	}
	return nil
}
