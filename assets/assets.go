// Package assets bundles the default periodic table catalog into the binary.
package assets

import _ "embed"

// ElementsJSON is the default catalog of all 118 elements.
//
//go:embed data/elements.json
var ElementsJSON []byte
