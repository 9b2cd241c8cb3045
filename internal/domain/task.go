package domain

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Status is the lifecycle state of a task.
type Status string

const (
	StatusPending Status = "pending"
	StatusWorking Status = "working"
	StatusReview  Status = "review"
	StatusDone    Status = "done"
	StatusArchive Status = "archive"
)

// Statuses lists every valid task status.
var Statuses = []Status{StatusPending, StatusWorking, StatusReview, StatusDone, StatusArchive}

// ParseStatus returns the Status for s, or false if s is not a valid status.
func ParseStatus(s string) (Status, bool) {
	for _, st := range Statuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

type Task struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Status      Status    `json:"status" db:"status"`
	Assignee    *string   `json:"assignee" db:"assignee"`
	IsDeleted   bool      `json:"isDeleted" db:"is_deleted"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// CanTransition reports whether the task may move to target. A task in
// status done only accepts archive; every other status accepts any value.
func (t *Task) CanTransition(target Status) bool {
	return t.Status != StatusDone || target == StatusArchive
}

// AssignedTask is a Task with its assignee reference resolved to the full
// user record, for listings that populate the relation.
type AssignedTask struct {
	Task
	Assignee *User `json:"assignee"`
}

// Capitalize normalizes a name for storage: the whole string is lowercased
// and the first letter uppercased ("fix BUG" -> "Fix bug").
func Capitalize(s string) string {
	s = strings.ToLower(s)
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
