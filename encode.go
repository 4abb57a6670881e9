package daftar

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// This file handles the blob format: the single JSON document holding the
// whole application state. The same shape is used for the durable slot and
// for the export/import surface, so a blob copied out-of-band can be pasted
// back verbatim.

// ImportError reports which part of an imported blob failed the structural
// check.
type ImportError struct {
	Field  string // the offending field, or "" when the text is not JSON at all
	Reason string
}

func (e *ImportError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid blob: %s", e.Reason)
	}
	return fmt.Sprintf("invalid blob: field %q: %s", e.Field, e.Reason)
}

// EncodeAppData writes the state as a single JSON blob.
func EncodeAppData(w io.Writer, d *AppData) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("cannot marshal app data: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write app data: %w", err)
	}
	return nil
}

// DecodeAppData reads a single JSON blob back into a state. Decoding is
// lenient: any JSON object is accepted, and the caller is expected to run
// Normalize on the result to repair partial state (missing records,
// missing settings). The structural shape check belongs to Import, the
// user-facing surface; a slot written by an older version must not lose
// its records over a field the defaults can supply.
func DecodeAppData(r io.Reader) (*AppData, error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read app data: %w", err)
	}
	var d AppData
	if err := json.Unmarshal(text, &d); err != nil {
		return nil, fmt.Errorf("cannot decode app data: %w", err)
	}
	return &d, nil
}

// Export serializes the state to the blob form, intended for the user to
// copy elsewhere for manual backup. Pure, no mutation.
func Export(d *AppData) (string, error) {
	var sb strings.Builder
	if err := EncodeAppData(&sb, d); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Import parses text as a blob and validates its structure. The check is
// shallow: the result must be a JSON object carrying a `records` array and
// a `settings` object. Failures return a wrapped *ImportError naming the
// offending field; the blob is never merged with existing state, import is
// a full replacement. Record count is not enforced here, Normalize restores
// the 200-row invariant afterwards.
func Import(text string) (*AppData, error) {
	var shape map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &shape); err != nil {
		return nil, fmt.Errorf("cannot import: %w", &ImportError{Reason: err.Error()})
	}
	if err := checkShape(shape, "records", '['); err != nil {
		return nil, fmt.Errorf("cannot import: %w", err)
	}
	if err := checkShape(shape, "settings", '{'); err != nil {
		return nil, fmt.Errorf("cannot import: %w", err)
	}

	var d AppData
	if err := json.Unmarshal([]byte(text), &d); err != nil {
		return nil, fmt.Errorf("cannot import: %w", importErrorFrom(err))
	}
	return &d, nil
}

// checkShape verifies that a top-level field exists and starts with the
// expected JSON token.
func checkShape(shape map[string]json.RawMessage, field string, open byte) *ImportError {
	raw, ok := shape[field]
	if !ok {
		return &ImportError{Field: field, Reason: "missing"}
	}
	trimmed := strings.TrimSpace(string(raw))
	if len(trimmed) == 0 || trimmed[0] != open {
		return &ImportError{Field: field, Reason: fmt.Sprintf("want a value starting with %q, got %.20q", string(open), trimmed)}
	}
	return nil
}

// importErrorFrom converts a json decoding error into an ImportError,
// keeping the field name when the decoder reports one.
func importErrorFrom(err error) *ImportError {
	if ute, ok := err.(*json.UnmarshalTypeError); ok {
		return &ImportError{Field: ute.Field, Reason: fmt.Sprintf("want %s, got %s", ute.Type, ute.Value)}
	}
	return &ImportError{Reason: err.Error()}
}
