package repository

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// orderClause builds a safe ORDER BY expression. The sort column must appear
// in the allowed set, otherwise the fallback column is used.
func orderClause(sortBy, sortOrder string, allowed map[string]bool, fallback string) string {
	col := fallback
	if allowed[sortBy] {
		col = sortBy
	}
	dir := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		dir = "ASC"
	}
	return fmt.Sprintf("%s %s", col, dir)
}

// groupCounts runs a grouped count over one column and returns value -> count
func groupCounts(query *gorm.DB, column string) (map[string]int64, error) {
	type row struct {
		Value string
		Count int64
	}
	var rows []row
	err := query.
		Select(fmt.Sprintf("%s AS value, COUNT(*) AS count", column)).
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Value] = r.Count
	}
	return out, nil
}
