package validation

import (
	"net/url"
	"testing"

	"coder_management/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskListParamsDefaults(t *testing.T) {
	p, err := TaskListParams(url.Values{})
	require.NoError(t, err)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Empty(t, p.Status)
	assert.Empty(t, p.Search)
	assert.Empty(t, p.SortBy)
}

func TestTaskListParamsUnknownKey(t *testing.T) {
	q := url.Values{"priority": {"high"}}
	_, err := TaskListParams(q)
	require.Error(t, err)

	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status)
	assert.Contains(t, appErr.Message, "[priority]")
}

func TestTaskListParamsEmptyValuesDropped(t *testing.T) {
	q := url.Values{"status": {""}, "search": {"  "}, "sort_by": {""}}
	p, err := TaskListParams(q)
	require.NoError(t, err)
	assert.Empty(t, p.Status)
	assert.Empty(t, p.Search)
	assert.Empty(t, p.SortBy)
}

func TestTaskListParamsValues(t *testing.T) {
	q := url.Values{
		"page":     {"3"},
		"limit":    {"5"},
		"status":   {"working"},
		"search":   {"  Fix BUG  "},
		"sort_by":  {"updatedAt"},
		"order_by": {"asc"},
	}
	p, err := TaskListParams(q)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 5, p.Limit)
	assert.Equal(t, "working", p.Status)
	assert.Equal(t, "fix bug", p.Search)
	assert.Equal(t, "updatedAt", p.SortBy)
	assert.Equal(t, "asc", p.OrderBy)
}

func TestTaskListParamsRejects(t *testing.T) {
	tests := []struct {
		name    string
		query   url.Values
		message string
	}{
		{"page zero", url.Values{"page": {"0"}}, "Page value must be a number larger than 0"},
		{"page not a number", url.Values{"page": {"two"}}, "Page value must be a number larger than 0"},
		{"limit negative", url.Values{"limit": {"-1"}}, "Limit value must be a number larger than 0"},
		{"bad status", url.Values{"status": {"closed"}}, "Status value must belong to one of these values"},
		{"bad sort field", url.Values{"sort_by": {"name"}}, "Sort value must belong to one of these values"},
		{"bad order", url.Values{"order_by": {"up"}}, "Order By value must belong to one of these values"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := TaskListParams(tt.query)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestUserListParams(t *testing.T) {
	p, err := UserListParams(url.Values{"search": {"Alice"}, "page": {"2"}})
	require.NoError(t, err)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, "alice", p.Search)

	// status is on the task allow-list only
	_, err = UserListParams(url.Values{"status": {"pending"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[status]")
}
