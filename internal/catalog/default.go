package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"
)

//go:embed skills.json
var defaultCatalogJSON []byte

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the built-in skill table. The embedded catalog is parsed
// once; a malformed embed is a programming error and panics.
func Default() *Table {
	defaultOnce.Do(func() {
		var doc Document
		if err := json.Unmarshal(defaultCatalogJSON, &doc); err != nil {
			panic(fmt.Sprintf("embedded skill catalog is malformed: %v", err))
		}
		table, err := New(&doc)
		if err != nil {
			panic(fmt.Sprintf("embedded skill catalog is invalid: %v", err))
		}
		defaultTable = table
	})
	return defaultTable
}
