// Package validate checks outgoing reports against the published JSON schema.
package validate

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"pdf-insight/internal/domain"
)

//go:embed report.schema.json
var reportSchema []byte

const schemaURL = "report.schema.json"

var (
	once    sync.Once
	schema  *jsonschema.Schema
	loadErr error
)

func load() {
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, bytes.NewReader(reportSchema)); err != nil {
		loadErr = fmt.Errorf("add schema: %w", err)
		return
	}
	s, err := c.Compile(schemaURL)
	if err != nil {
		loadErr = fmt.Errorf("compile schema: %w", err)
		return
	}
	schema = s
}

// Schema returns the raw report schema.
func Schema() []byte {
	return reportSchema
}

// Report validates the JSON encoding of a report.
func Report(report *domain.Report) error {
	b, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	return JSON(b)
}

// JSON validates an already encoded report.
func JSON(data []byte) error {
	once.Do(load)
	if loadErr != nil {
		return loadErr
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal report: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("report does not match schema: %w", err)
	}
	return nil
}
