package postgres

import "strings"

// prefixColumns qualifies every column in a comma-separated list with a
// table alias, for queries that join and would otherwise be ambiguous.
func prefixColumns(alias, columns string) string {
	parts := strings.Split(columns, ",")
	for i, part := range parts {
		parts[i] = alias + "." + strings.TrimSpace(part)
	}
	return strings.Join(parts, ", ")
}
