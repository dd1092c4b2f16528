// internal/adapters/db/repository.go
package db

import "strings"

// columnList joins column names for hand-written SELECTs that share the
// per-table column slices with the squirrel builders.
func columnList(columns []string) string {
	return strings.Join(columns, ", ")
}

// nullableString maps "" to SQL NULL for optional text columns.
func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
