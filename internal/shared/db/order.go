package db

import "strings"

// OrderExpr resolves a caller-supplied ordering parameter against a whitelist
// of field-to-SQL-expression mappings. A leading '-' means descending. Unknown
// or empty values fall back to def.
func OrderExpr(ordering string, allowed map[string]string, def string) string {
	dir := "ASC"
	if strings.HasPrefix(ordering, "-") {
		dir = "DESC"
		ordering = ordering[1:]
	}
	expr, ok := allowed[ordering]
	if !ok {
		return def
	}
	return expr + " " + dir
}
