package snapshot

import (
	"fmt"
	"strings"

	"github.com/parquet-go/parquet-go"
)

// ValidateSchema checks that the Parquet schema carries the columns needed to
// compare a snapshot with the registry.
func ValidateSchema(schema *parquet.Schema) error {
	columns := make(map[string]bool)
	for _, field := range schema.Fields() {
		columns[strings.ToLower(field.Name())] = true
	}

	for _, col := range []string{"code", "description"} {
		if !columns[col] {
			return fmt.Errorf("missing required column: %s", col)
		}
	}
	return nil
}
