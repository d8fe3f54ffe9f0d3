package catalog

import (
	_ "embed"
	"sync"
)

//go:embed data/vendors.json
var defaultVendors []byte

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the catalog bundled with the binary.
// It panics if the bundled data fails validation.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Parse(defaultVendors, FormatJSON, "vendors.json")
		if defaultErr == nil {
			defaultCatalog.MustValidate()
		}
	})
	return defaultCatalog, defaultErr
}

// Load returns the catalog at path, or the bundled one when path is empty
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}
