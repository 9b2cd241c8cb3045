package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		count, limit, want int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{25, 5, 5},
		{3, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.count, tt.limit), "count=%d limit=%d", tt.count, tt.limit)
	}
}

func TestListParamsOffset(t *testing.T) {
	assert.Equal(t, 0, ListParams{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 10, ListParams{Page: 2, Limit: 10}.Offset())
	assert.Equal(t, 12, ListParams{Page: 4, Limit: 4}.Offset())
}

func TestBuildTaskListSQLBare(t *testing.T) {
	countSQL, pageSQL, args := buildTaskListSQL(ListParams{Page: 1, Limit: 10})

	assert.Equal(t, "SELECT COUNT(*) FROM tasks WHERE is_deleted = false", countSQL)
	assert.Empty(t, args)
	assert.Contains(t, pageSQL, "WHERE is_deleted = false")
	assert.Contains(t, pageSQL, "ORDER BY created_at DESC")
	assert.Contains(t, pageSQL, "LIMIT $1 OFFSET $2")
}

func TestBuildTaskListSQLFilters(t *testing.T) {
	countSQL, pageSQL, args := buildTaskListSQL(ListParams{
		Page:   2,
		Limit:  5,
		Status: "working",
		Search: "bug",
	})

	assert.Equal(t, []any{"working", "bug"}, args)
	assert.Contains(t, countSQL, "status = $1")
	assert.Contains(t, countSQL, "plainto_tsquery('simple', $2)")
	// count and page must share the same predicate
	assert.Contains(t, pageSQL, "status = $1")
	assert.Contains(t, pageSQL, "plainto_tsquery('simple', $2)")
	assert.Contains(t, pageSQL, "LIMIT $3 OFFSET $4")
}

func TestBuildTaskListSQLSort(t *testing.T) {
	_, pageSQL, _ := buildTaskListSQL(ListParams{Page: 1, Limit: 10, SortBy: "updatedAt", OrderBy: "asc"})
	assert.Contains(t, pageSQL, "ORDER BY updated_at ASC")

	// order_by only has meaning together with sort_by
	_, pageSQL, _ = buildTaskListSQL(ListParams{Page: 1, Limit: 10, OrderBy: "asc"})
	assert.Contains(t, pageSQL, "ORDER BY created_at DESC")

	// unrecognized direction falls back to desc
	_, pageSQL, _ = buildTaskListSQL(ListParams{Page: 1, Limit: 10, SortBy: "createdAt", OrderBy: "sideways"})
	assert.Contains(t, pageSQL, "ORDER BY created_at DESC")
}

func TestBuildUserListSQL(t *testing.T) {
	countSQL, pageSQL, args := buildUserListSQL(ListParams{Page: 1, Limit: 10, Search: "alice"})

	assert.Equal(t, []any{"alice"}, args)
	assert.Contains(t, countSQL, "is_deleted = false")
	assert.Contains(t, countSQL, "name || ' ' || role")
	assert.Contains(t, pageSQL, "ORDER BY created_at DESC")
	assert.Contains(t, pageSQL, "LIMIT $2 OFFSET $3")
}
