//nolint:tagliatelle
package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/farcloser/primordium/fault"

	analytics "github.com/jschlyter/custom-integrations-analytics"
)

// ErrMissingField is returned when a dataset entry lacks a required field.
var ErrMissingField = errors.New("missing field")

type usageValue struct {
	Total *json.Number `json:"total"`
}

type integrationValue struct {
	Domain       *string `json:"domain"`
	ManifestName *string `json:"manifest_name"`
	FullName     *string `json:"full_name"`
}

// ParseUsage decodes a usage dataset. Records come back in document order.
// A key repeated in the document keeps its first position and its last value.
func ParseUsage(data []byte) ([]analytics.UsageRecord, error) {
	var records []analytics.UsageRecord

	seen := map[string]int{}

	err := eachEntry(data, func(key string, raw json.RawMessage) error {
		var value usageValue
		if err := json.Unmarshal(raw, &value); err != nil {
			return fmt.Errorf("%w: entry %q: %w", fault.ErrInvalidJSON, key, err)
		}

		if value.Total == nil {
			return fmt.Errorf("%w: entry %q: total", ErrMissingField, key)
		}

		count, err := value.Total.Int64()
		if err != nil || count < 0 {
			return fmt.Errorf("%w: entry %q: total %q is not a non-negative integer",
				fault.ErrInvalidJSON, key, value.Total.String())
		}

		record := analytics.UsageRecord{Identifier: key, Count: count}

		if idx, ok := seen[key]; ok {
			records[idx] = record

			return nil
		}

		seen[key] = len(records)
		records = append(records, record)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

// ParseIntegrations decodes the HACS integration dataset.
func ParseIntegrations(data []byte) ([]analytics.Integration, error) {
	var integrations []analytics.Integration

	err := eachEntry(data, func(key string, raw json.RawMessage) error {
		var value integrationValue
		if err := json.Unmarshal(raw, &value); err != nil {
			return fmt.Errorf("%w: entry %q: %w", fault.ErrInvalidJSON, key, err)
		}

		switch {
		case value.Domain == nil:
			return fmt.Errorf("%w: entry %q: domain", ErrMissingField, key)
		case value.ManifestName == nil:
			return fmt.Errorf("%w: entry %q: manifest_name", ErrMissingField, key)
		case value.FullName == nil:
			return fmt.Errorf("%w: entry %q: full_name", ErrMissingField, key)
		}

		integrations = append(integrations, analytics.Integration{
			Domain:       *value.Domain,
			ManifestName: *value.ManifestName,
			FullName:     *value.FullName,
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return integrations, nil
}

// eachEntry walks the members of a top-level JSON object in document order.
func eachEntry(data []byte, visit func(key string, raw json.RawMessage) error) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("%w: %w", fault.ErrInvalidJSON, err)
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("%w: expected a JSON object at top level", fault.ErrInvalidJSON)
	}

	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return fmt.Errorf("%w: %w", fault.ErrInvalidJSON, err)
		}

		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("%w: unexpected token %v", fault.ErrInvalidJSON, tok)
		}

		var raw json.RawMessage
		if err = dec.Decode(&raw); err != nil {
			return fmt.Errorf("%w: entry %q: %w", fault.ErrInvalidJSON, key, err)
		}

		if err = visit(key, raw); err != nil {
			return err
		}
	}

	// Closing brace.
	if _, err = dec.Token(); err != nil {
		return fmt.Errorf("%w: %w", fault.ErrInvalidJSON, err)
	}

	if _, err = dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: trailing data after top-level object", fault.ErrInvalidJSON)
	}

	return nil
}
