package postgres

import "strings"

// qualify prefixes each column in a comma-separated column list with the
// given table alias, for queries that join tables.
func qualify(columns, alias string) string {
	parts := strings.Split(columns, ",")
	for i, p := range parts {
		parts[i] = alias + "." + strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}
