package llm

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

var compiledSchemas sync.Map // schema name -> *jsonschema.Schema

// finishContent post-processes a vendor's text output. Schema requests are
// rejected when truncated, stripped to the outermost JSON object and
// validated.
func finishContent(provider string, req Request, text string, stop StopReason) (json.RawMessage, error) {
	raw := json.RawMessage(text)
	if req.Schema == nil {
		return raw, nil
	}
	if stop == StopMaxTokens {
		return nil, &Error{Kind: KindTruncated, Provider: provider, Content: raw,
			Err: fmt.Errorf("output exceeded %d tokens", req.MaxTokens)}
	}

	raw = extractJSONObject(raw)
	if err := validateResponse(req.Schema, raw); err != nil {
		err.Provider = provider
		return nil, err
	}
	return raw, nil
}

// validateResponse checks raw against schema.
func validateResponse(schema *Schema, raw json.RawMessage) *Error {
	if schema == nil {
		return nil
	}
	invalid := func(err error) *Error {
		return &Error{Kind: KindInvalidResponse, Content: raw, Err: err}
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return invalid(fmt.Errorf("invalid JSON: %w", err))
	}

	compiled, err := compileSchema(schema)
	if err != nil {
		return invalid(fmt.Errorf("compile schema %q: %w", schema.Name, err))
	}

	if err := compiled.Validate(doc); err != nil {
		return invalid(fmt.Errorf("schema %q: %w", schema.Name, err))
	}
	return nil
}

func compileSchema(schema *Schema) (*jsonschema.Schema, error) {
	if s, ok := compiledSchemas.Load(schema.Name); ok {
		return s.(*jsonschema.Schema), nil
	}
	if schema.Name == "" {
		return nil, errors.New("schema has no name")
	}

	def, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, err
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(def))
	if err != nil {
		return nil, err
	}

	url := "mem://schemas/" + schema.Name + ".json"
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		return nil, err
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, err
	}

	actual, _ := compiledSchemas.LoadOrStore(schema.Name, compiled)
	return actual.(*jsonschema.Schema), nil
}

// extractJSONObject trims anything outside the outermost {...} span, such as
// markdown fences. Content without braces is returned unchanged.
func extractJSONObject(raw json.RawMessage) json.RawMessage {
	start := bytes.IndexByte(raw, '{')
	end := bytes.LastIndexByte(raw, '}')
	if start < 0 || end < start {
		return raw
	}
	return raw[start : end+1]
}
