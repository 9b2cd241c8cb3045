package repository

import (
	"context"
	"fmt"
	"testing"

	"coder_management/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTasks(t *testing.T, store *MemoryStore, n int) []domain.Task {
	t.Helper()
	var out []domain.Task
	for i := 0; i < n; i++ {
		task := domain.Task{
			Name:        fmt.Sprintf("Task %d", i),
			Description: fmt.Sprintf("Detail %d", i),
			Status:      domain.StatusPending,
		}
		require.NoError(t, store.Create(context.Background(), &task))
		out = append(out, task)
	}
	return out
}

func TestMemoryStorePagination(t *testing.T) {
	store := NewMemoryStore()
	seedTasks(t, store, 12)

	page, count, err := store.List(context.Background(), ListParams{Page: 3, Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, 12, count)
	assert.Len(t, page, 2)

	page, count, err = store.List(context.Background(), ListParams{Page: 4, Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, 12, count)
	assert.Empty(t, page)
}

func TestMemoryStoreNewestFirst(t *testing.T) {
	store := NewMemoryStore()
	seedTasks(t, store, 3)

	page, _, err := store.List(context.Background(), ListParams{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, page, 3)
	assert.Equal(t, "Task 2", page[0].Name)
	assert.Equal(t, "Task 0", page[2].Name)
}

func TestMemoryStoreStatusFilter(t *testing.T) {
	store := NewMemoryStore()
	tasks := seedTasks(t, store, 4)

	tasks[1].Status = domain.StatusDone
	require.NoError(t, store.Update(context.Background(), &tasks[1]))

	page, count, err := store.List(context.Background(), ListParams{Page: 1, Limit: 10, Status: "done"})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	require.Len(t, page, 1)
	assert.Equal(t, tasks[1].ID, page[0].ID)
}

func TestMemoryStoreSearch(t *testing.T) {
	store := NewMemoryStore()
	a := domain.Task{Name: "Fix login", Description: "Broken redirect", Status: domain.StatusPending}
	b := domain.Task{Name: "Write docs", Description: "Api reference", Status: domain.StatusPending}
	require.NoError(t, store.Create(context.Background(), &a))
	require.NoError(t, store.Create(context.Background(), &b))

	page, count, err := store.List(context.Background(), ListParams{Page: 1, Limit: 10, Search: "login"})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	require.Len(t, page, 1)
	assert.Equal(t, a.ID, page[0].ID)

	// tokenized, not substring: "log" matches nothing
	_, count, err = store.List(context.Background(), ListParams{Page: 1, Limit: 10, Search: "log"})
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestMemoryStoreSoftDeleteHidden(t *testing.T) {
	store := NewMemoryStore()
	tasks := seedTasks(t, store, 2)

	tasks[0].IsDeleted = true
	require.NoError(t, store.Update(context.Background(), &tasks[0]))

	_, err := store.GetByID(context.Background(), tasks[0].ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, count, err := store.List(context.Background(), ListParams{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMemoryStoreDuplicateContent(t *testing.T) {
	store := NewMemoryStore()
	a := domain.Task{Name: "Fix bug", Description: "In prod", Status: domain.StatusPending}
	require.NoError(t, store.Create(context.Background(), &a))

	dup := domain.Task{Name: "Fix bug", Description: "In prod", Status: domain.StatusPending}
	assert.ErrorIs(t, store.Create(context.Background(), &dup), ErrDuplicate)

	// soft-deleting the original frees the content pair
	a.IsDeleted = true
	require.NoError(t, store.Update(context.Background(), &a))
	assert.NoError(t, store.Create(context.Background(), &dup))
}

func TestMemoryStoreEmployeeNameUnique(t *testing.T) {
	store := NewMemoryStore()
	users := store.Users()

	u := domain.User{Name: "Alice", Role: domain.RoleEmployee}
	require.NoError(t, users.Create(context.Background(), &u))

	dup := domain.User{Name: "ALICE", Role: domain.RoleEmployee}
	assert.ErrorIs(t, users.Create(context.Background(), &dup), ErrDuplicate)

	manager := domain.User{Name: "Alice", Role: domain.RoleManager}
	assert.NoError(t, users.Create(context.Background(), &manager))
}
