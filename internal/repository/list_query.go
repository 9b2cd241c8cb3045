package repository

import "fmt"

// ListParams carries the recognized, already-validated parameters of a
// list request. Zero-value fields mean "not supplied"; Page and Limit are
// always set by the validation layer (defaults 1 and 10).
type ListParams struct {
	Page    int
	Limit   int
	Status  string // tasks only
	Search  string // lowercased and trimmed
	SortBy  string // "createdAt" or "updatedAt"; empty for the default sort
	OrderBy string // "asc" or "desc"; meaningful only with SortBy
}

// Offset is the number of rows skipped before the returned page.
func (p ListParams) Offset() int {
	return p.Limit * (p.Page - 1)
}

// TotalPages is ceil(count/limit) for the same filter predicate the page
// was computed against.
func TotalPages(count, limit int) int {
	if limit <= 0 {
		return 0
	}
	return (count + limit - 1) / limit
}

var sortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

func orderClause(p ListParams) string {
	col, ok := sortColumns[p.SortBy]
	if !ok {
		// default sort for both resources
		col = "created_at"
	}
	dir := "DESC"
	if p.SortBy != "" && p.OrderBy == "asc" {
		dir = "ASC"
	}
	return " ORDER BY " + col + " " + dir
}

// buildTaskListSQL returns the count query and the page query for a task
// list request. Both share the same predicate and args; the page query
// additionally expects limit and offset appended to args.
func buildTaskListSQL(p ListParams) (countSQL, pageSQL string, args []any) {
	where := " WHERE is_deleted = false"
	if p.Status != "" {
		args = append(args, p.Status)
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if p.Search != "" {
		args = append(args, p.Search)
		where += fmt.Sprintf(
			" AND to_tsvector('simple', name || ' ' || description || ' ' || status) @@ plainto_tsquery('simple', $%d)",
			len(args))
	}

	countSQL = "SELECT COUNT(*) FROM tasks" + where
	pageSQL = "SELECT " + taskColumns + " FROM tasks" + where + orderClause(p) +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	return countSQL, pageSQL, args
}

// buildUserListSQL is the user-resource counterpart of buildTaskListSQL.
// Users only support search; status never applies.
func buildUserListSQL(p ListParams) (countSQL, pageSQL string, args []any) {
	where := " WHERE is_deleted = false"
	if p.Search != "" {
		args = append(args, p.Search)
		where += fmt.Sprintf(
			" AND to_tsvector('simple', name || ' ' || role) @@ plainto_tsquery('simple', $%d)",
			len(args))
	}

	countSQL = "SELECT COUNT(*) FROM users" + where
	pageSQL = "SELECT " + userColumns + " FROM users" + where + orderClause(p) +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	return countSQL, pageSQL, args
}
