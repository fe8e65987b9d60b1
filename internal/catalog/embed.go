package catalog

import _ "embed"

// rawCatalogJSON is the reference dataset compiled into the binary.
//
//go:embed data/factors.json
var rawCatalogJSON []byte
