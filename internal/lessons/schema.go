package lessons

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/jinyu/pindrill/internal/vocab"
)

// backupSchema describes the backup file format: a JSON array of lessons,
// each with a name and at least one character/pinyin word. Ids are
// accepted but ignored; fresh ones are minted on import.
var backupSchema = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":           map[string]any{"type": "string"},
			"name":         map[string]any{"type": "string", "minLength": 1},
			"isPredefined": map[string]any{"type": "boolean"},
			"level":        map[string]any{"type": "string"},
			"words": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":        map[string]any{"type": "string"},
						"character": map[string]any{"type": "string", "minLength": 1},
						"pinyin":    map[string]any{"type": "string", "minLength": 1},
					},
					"required": []any{"character", "pinyin"},
				},
			},
		},
		"required": []any{"name", "words"},
	},
}

var (
	compiledOnce   sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func compiledBackupSchema() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		defBytes, err := json.Marshal(backupSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://lesson-backup.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// decodeBackup validates raw against the backup schema and decodes it.
func decodeBackup(raw []byte) ([]vocab.Lesson, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("backup is not valid JSON: %w", err)
	}

	schema, err := compiledBackupSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("backup does not match the lesson format: %w", err)
	}

	var imported []vocab.Lesson
	if err := json.Unmarshal(raw, &imported); err != nil {
		return nil, fmt.Errorf("decode backup: %w", err)
	}
	return imported, nil
}
