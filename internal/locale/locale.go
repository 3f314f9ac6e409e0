// Package locale serves the UI translation dictionary. Strings are grouped
// into namespaces (one per UI area) and embedded at build time, so a missing
// dictionary is a startup error rather than a runtime one.
package locale

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/pauloargenal/e-commerce-deployed/pkg/errors"
)

//go:embed en.json
var enJSON []byte

// Dictionary maps namespace -> key -> translated string.
type Dictionary map[string]map[string]string

// requiredNamespaces must all be present for the UI to render.
var requiredNamespaces = []string{
	"common",
	"products",
	"productCard",
	"productDetail",
	"cart",
	"checkout",
	"receipt",
	"footer",
}

// Load parses and validates the embedded English dictionary.
func Load() (Dictionary, error) {
	var dict Dictionary
	if err := json.Unmarshal(enJSON, &dict); err != nil {
		return nil, fmt.Errorf("parse locale dictionary: %w", err)
	}

	for _, ns := range requiredNamespaces {
		entries, ok := dict[ns]
		if !ok {
			return nil, fmt.Errorf("locale dictionary missing namespace %q", ns)
		}
		if len(entries) == 0 {
			return nil, fmt.Errorf("locale namespace %q is empty", ns)
		}
	}

	return dict, nil
}

// Namespace returns the strings for a single namespace.
func (d Dictionary) Namespace(name string) (map[string]string, error) {
	entries, ok := d[name]
	if !ok {
		return nil, errors.NotFound("locale namespace", name)
	}
	return entries, nil
}
