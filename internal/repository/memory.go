package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"coder_management/internal/domain"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory implementation of the task and user
// repositories with the same semantics as the Postgres ones. It backs the
// test suites and local development without a database.
type MemoryStore struct {
	mu    sync.RWMutex
	tasks map[string]*taskRecord
	users map[string]*userRecord
	seq   int64
}

type taskRecord struct {
	task domain.Task
	seq  int64
}

type userRecord struct {
	user domain.User
	seq  int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tasks: make(map[string]*taskRecord),
		users: make(map[string]*userRecord),
	}
}

// textMatches mimics tokenized full-text search: the row matches when any
// search token appears as a word in the row's indexed text.
func textMatches(search, text string) bool {
	rowTokens := strings.Fields(strings.ToLower(text))
	for _, tok := range strings.Fields(search) {
		for _, rt := range rowTokens {
			if rt == tok {
				return true
			}
		}
	}
	return false
}

func sortTime(sortBy string, created, updated time.Time) time.Time {
	if sortBy == "updatedAt" {
		return updated
	}
	return created
}

func paginate[T any](items []T, p ListParams) []T {
	off := p.Offset()
	if off >= len(items) {
		return nil
	}
	end := off + p.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[off:end]
}

func (m *MemoryStore) nextSeq() int64 {
	m.seq++
	return m.seq
}

// --- tasks ---

func (m *MemoryStore) List(ctx context.Context, p ListParams) ([]domain.Task, int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var recs []*taskRecord
	for _, rec := range m.tasks {
		t := rec.task
		if t.IsDeleted {
			continue
		}
		if p.Status != "" && string(t.Status) != p.Status {
			continue
		}
		if p.Search != "" && !textMatches(p.Search, t.Name+" "+t.Description+" "+string(t.Status)) {
			continue
		}
		recs = append(recs, rec)
	}

	asc := p.SortBy != "" && p.OrderBy == "asc"
	sort.Slice(recs, func(i, j int) bool {
		ti := sortTime(p.SortBy, recs[i].task.CreatedAt, recs[i].task.UpdatedAt)
		tj := sortTime(p.SortBy, recs[j].task.CreatedAt, recs[j].task.UpdatedAt)
		if ti.Equal(tj) {
			if asc {
				return recs[i].seq < recs[j].seq
			}
			return recs[i].seq > recs[j].seq
		}
		if asc {
			return ti.Before(tj)
		}
		return ti.After(tj)
	})

	count := len(recs)
	var page []domain.Task
	for _, rec := range paginate(recs, p) {
		page = append(page, rec.task)
	}
	return page, count, nil
}

func (m *MemoryStore) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.tasks[id]
	if !ok || rec.task.IsDeleted {
		return nil, ErrNotFound
	}
	t := rec.task
	return &t, nil
}

func (m *MemoryStore) FindByContent(ctx context.Context, name, description string) (*domain.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, rec := range m.tasks {
		if !rec.task.IsDeleted && rec.task.Name == name && rec.task.Description == description {
			t := rec.task
			return &t, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) Create(ctx context.Context, t *domain.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, rec := range m.tasks {
		if !rec.task.IsDeleted && rec.task.Name == t.Name && rec.task.Description == t.Description {
			return ErrDuplicate
		}
	}

	now := time.Now().UTC()
	t.ID = uuid.NewString()
	t.IsDeleted = false
	t.CreatedAt = now
	t.UpdatedAt = now
	m.tasks[t.ID] = &taskRecord{task: *t, seq: m.nextSeq()}
	return nil
}

func (m *MemoryStore) Update(ctx context.Context, t *domain.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.tasks[t.ID]
	if !ok {
		return ErrNotFound
	}
	t.UpdatedAt = time.Now().UTC()
	t.CreatedAt = rec.task.CreatedAt
	rec.task = *t
	return nil
}

func (m *MemoryStore) ListByAssignee(ctx context.Context, userID string) ([]domain.AssignedTask, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	urec, ok := m.users[userID]
	if !ok {
		return nil, nil
	}
	u := urec.user

	var recs []*taskRecord
	for _, rec := range m.tasks {
		if !rec.task.IsDeleted && rec.task.Assignee != nil && *rec.task.Assignee == userID {
			recs = append(recs, rec)
		}
	}
	sort.Slice(recs, func(i, j int) bool {
		if recs[i].task.CreatedAt.Equal(recs[j].task.CreatedAt) {
			return recs[i].seq > recs[j].seq
		}
		return recs[i].task.CreatedAt.After(recs[j].task.CreatedAt)
	})

	var res []domain.AssignedTask
	for _, rec := range recs {
		at := domain.AssignedTask{Task: rec.task}
		user := u
		at.Assignee = &user
		res = append(res, at)
	}
	return res, nil
}

// --- users ---

func (m *MemoryStore) listUsers(ctx context.Context, p ListParams) ([]domain.User, int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var recs []*userRecord
	for _, rec := range m.users {
		u := rec.user
		if u.IsDeleted {
			continue
		}
		if p.Search != "" && !textMatches(p.Search, u.Name+" "+string(u.Role)) {
			continue
		}
		recs = append(recs, rec)
	}

	sort.Slice(recs, func(i, j int) bool {
		if recs[i].user.CreatedAt.Equal(recs[j].user.CreatedAt) {
			return recs[i].seq > recs[j].seq
		}
		return recs[i].user.CreatedAt.After(recs[j].user.CreatedAt)
	})

	count := len(recs)
	var page []domain.User
	for _, rec := range paginate(recs, p) {
		page = append(page, rec.user)
	}
	return page, count, nil
}

func (m *MemoryStore) getUserByID(ctx context.Context, id string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.users[id]
	if !ok || rec.user.IsDeleted {
		return nil, ErrNotFound
	}
	u := rec.user
	return &u, nil
}

func (m *MemoryStore) findEmployeeByName(ctx context.Context, name string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, rec := range m.users {
		u := rec.user
		if !u.IsDeleted && u.Role == domain.RoleEmployee && strings.EqualFold(u.Name, name) {
			out := u
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) createUser(ctx context.Context, u *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if u.Role == domain.RoleEmployee {
		for _, rec := range m.users {
			other := rec.user
			if !other.IsDeleted && other.Role == domain.RoleEmployee && strings.EqualFold(other.Name, u.Name) {
				return ErrDuplicate
			}
		}
	}

	now := time.Now().UTC()
	u.ID = uuid.NewString()
	u.IsDeleted = false
	u.CreatedAt = now
	u.UpdatedAt = now
	m.users[u.ID] = &userRecord{user: *u, seq: m.nextSeq()}
	return nil
}

// MemoryUserRepository exposes the user half of a MemoryStore under the
// same method set as UserRepository. The store itself already satisfies
// the task repository method set.
type MemoryUserRepository struct {
	s *MemoryStore
}

// Users returns the user repository view of the store.
func (m *MemoryStore) Users() *MemoryUserRepository {
	return &MemoryUserRepository{s: m}
}

func (r *MemoryUserRepository) List(ctx context.Context, p ListParams) ([]domain.User, int, error) {
	return r.s.listUsers(ctx, p)
}

func (r *MemoryUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.s.getUserByID(ctx, id)
}

func (r *MemoryUserRepository) FindEmployeeByName(ctx context.Context, name string) (*domain.User, error) {
	return r.s.findEmployeeByName(ctx, name)
}

func (r *MemoryUserRepository) Create(ctx context.Context, u *domain.User) error {
	return r.s.createUser(ctx, u)
}
