package schema

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed board.schema.json
var boardSchemaJSON []byte

const boardSchemaURL = "board.schema.json"

var (
	boardSchemaOnce sync.Once
	boardSchema     *jsonschema.Schema
	boardSchemaErr  error
)

// BoardSchema returns the raw JSON Schema that board documents must satisfy.
func BoardSchema() []byte {
	return boardSchemaJSON
}

func compiledBoardSchema() (*jsonschema.Schema, error) {
	boardSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft7
		if err := compiler.AddResource(boardSchemaURL, bytes.NewReader(boardSchemaJSON)); err != nil {
			boardSchemaErr = fmt.Errorf("load board schema: %w", err)
			return
		}
		boardSchema, boardSchemaErr = compiler.Compile(boardSchemaURL)
	})
	return boardSchema, boardSchemaErr
}

// ValidateBoardDocument checks a generic board document (as decoded from YAML or
// JSON) against the board schema. The document is normalised through JSON first so
// YAML scalars and Go values validate the same way.
func ValidateBoardDocument(doc any) error {
	sch, err := compiledBoardSchema()
	if err != nil {
		return err
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document for validation: %w", err)
	}
	var normalized any
	if err := json.Unmarshal(raw, &normalized); err != nil {
		return fmt.Errorf("failed to unmarshal document for validation: %w", err)
	}

	if err := sch.Validate(normalized); err != nil {
		ve, ok := err.(*jsonschema.ValidationError)
		if !ok {
			return err
		}
		aggr := &AggregateError{}
		collectSchemaErrors(aggr, ve)
		return aggr
	}
	return nil
}

func collectSchemaErrors(aggr *AggregateError, err *jsonschema.ValidationError) {
	if err == nil {
		return
	}

	if len(err.Causes) == 0 {
		aggr.Errors = append(aggr.Errors, &ValidationError{
			Key:    jsonPointerToPath(err.InstanceLocation),
			Reason: err.Message,
		})
		return
	}

	for _, cause := range err.Causes {
		collectSchemaErrors(aggr, cause)
	}
}

// jsonPointerToPath turns "/lists/0/id" into "lists[0].id".
func jsonPointerToPath(ptr string) string {
	if ptr == "" {
		return "$"
	}

	var b strings.Builder
	for _, part := range strings.Split(strings.TrimPrefix(ptr, "/"), "/") {
		if part != "" && strings.Trim(part, "0123456789") == "" {
			b.WriteString("[" + part + "]")
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}
