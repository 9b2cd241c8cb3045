package validation

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"coder_management/internal/domain"
	"coder_management/internal/repository"
)

var (
	taskListKeys = map[string]bool{
		"page": true, "limit": true, "status": true,
		"search": true, "sort_by": true, "order_by": true,
	}
	userListKeys = map[string]bool{
		"page": true, "limit": true, "search": true,
	}
	taskSortFields = map[string]bool{"createdAt": true, "updatedAt": true}
)

// checkAllowedKeys fails the whole request on the first query key outside
// the resource's allow-list. Runs before anything touches storage.
func checkAllowedKeys(q url.Values, allowed map[string]bool, summary string) error {
	for key := range q {
		if !allowed[key] {
			return domain.NewValidationError(
				fmt.Sprintf("Query key [%s] is not allowed", key), summary)
		}
	}
	return nil
}

func parsePositiveInt(q url.Values, key, label, summary string, def int) (int, error) {
	v := q.Get(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 0, domain.NewValidationError(
			label+" value must be a number larger than 0", summary)
	}
	return n, nil
}

// TaskListParams validates the query of GET /tasks. Empty-string values
// are treated as absent.
func TaskListParams(q url.Values) (repository.ListParams, error) {
	const summary = "Get Task List Failed."

	if err := checkAllowedKeys(q, taskListKeys, summary); err != nil {
		return repository.ListParams{}, err
	}

	p := repository.ListParams{}
	var err error
	if p.Page, err = parsePositiveInt(q, "page", "Page", summary, 1); err != nil {
		return repository.ListParams{}, err
	}
	if p.Limit, err = parsePositiveInt(q, "limit", "Limit", summary, 10); err != nil {
		return repository.ListParams{}, err
	}

	if v := Sanitize(q.Get("status")); v != "" {
		if _, ok := domain.ParseStatus(v); !ok {
			return repository.ListParams{}, domain.NewValidationError(
				"Status value must belong to one of these values: [pending, working, review, done, archive].",
				summary)
		}
		p.Status = v
	}

	if v := Sanitize(q.Get("sort_by")); v != "" {
		if !taskSortFields[v] {
			return repository.ListParams{}, domain.NewValidationError(
				"Sort value must belong to one of these values: [createdAt, updatedAt].", summary)
		}
		p.SortBy = v
	}

	if v := Sanitize(q.Get("order_by")); v != "" {
		if v != "asc" && v != "desc" {
			return repository.ListParams{}, domain.NewValidationError(
				"Order By value must belong to one of these values: [asc, desc]", summary)
		}
		p.OrderBy = v
	}

	p.Search = strings.ToLower(Sanitize(q.Get("search")))
	return p, nil
}

// UserListParams validates the query of GET /users.
func UserListParams(q url.Values) (repository.ListParams, error) {
	const summary = "Get User List Failed."

	if err := checkAllowedKeys(q, userListKeys, summary); err != nil {
		return repository.ListParams{}, err
	}

	p := repository.ListParams{}
	var err error
	if p.Page, err = parsePositiveInt(q, "page", "Page", summary, 1); err != nil {
		return repository.ListParams{}, err
	}
	if p.Limit, err = parsePositiveInt(q, "limit", "Limit", summary, 10); err != nil {
		return repository.ListParams{}, err
	}

	p.Search = strings.ToLower(Sanitize(q.Get("search")))
	return p, nil
}
