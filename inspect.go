package daftar

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// QueryBlob evaluates a JSONPath expression against a blob, e.g.
// "$.settings.exchangeRate" or "$.records[?(@.name != '')].name". It lets a
// user check an exported backup without pasting it back in.
func QueryBlob(blob, path string) (any, error) {
	var jobj any
	if err := json.Unmarshal([]byte(blob), &jobj); err != nil {
		return nil, fmt.Errorf("error parsing blob: %w", err)
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	// because jsonpath is never clear about wheter it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) == 1 {
		jval = jlist[0]
	}
	return jval, nil
}
