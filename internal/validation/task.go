package validation

import (
	"coder_management/internal/domain"
	"coder_management/internal/service"

	"github.com/google/uuid"
)

// CreateTaskInput is the validated body of POST /tasks.
type CreateTaskInput struct {
	Name        string
	Description string
}

func CreateTask(body map[string]any) (CreateTaskInput, error) {
	const summary = "Create Task Failed."

	name, err := requiredString(body, "name", "Name", summary)
	if err != nil {
		return CreateTaskInput{}, err
	}
	description, err := requiredString(body, "description", "Description", summary)
	if err != nil {
		return CreateTaskInput{}, err
	}
	return CreateTaskInput{Name: name, Description: description}, nil
}

// UpdateTask validates the combined body of PUT /tasks/:id. At least one
// of status and assignee must be present; each present field is checked
// on its own. An empty assignee string means "clear the assignment" and
// is kept distinct from an absent field.
func UpdateTask(body map[string]any) (service.TaskUpdate, error) {
	const summary = "Update Task Failed."

	var upd service.TaskUpdate

	if v, ok := body["status"]; ok {
		s, ok := v.(string)
		if !ok {
			return upd, domain.NewValidationError("Status value must be a string.", summary)
		}
		s = Sanitize(s)
		if s == "" {
			return upd, domain.NewValidationError("Status value is required.", summary)
		}
		status, ok := domain.ParseStatus(s)
		if !ok {
			return upd, domain.NewValidationError(
				"Status value must belong to one of these values: [pending, working, review, done, archive].",
				summary)
		}
		upd.Status = &status
	}

	if v, ok := body["assignee"]; ok {
		assignee := ""
		if v != nil {
			s, ok := v.(string)
			if !ok {
				return upd, domain.NewValidationError("Assignee value must be a string.", summary)
			}
			assignee = Sanitize(s)
		}
		if assignee != "" {
			if _, err := uuid.Parse(assignee); err != nil {
				return upd, domain.NewValidationError("Assignee Id must be a valid UUID.", summary)
			}
		}
		upd.Assignee = &assignee
	}

	if upd.Status == nil && upd.Assignee == nil {
		return upd, domain.NewValidationError(
			"Update body must contain at least one of: status, assignee.", summary)
	}
	return upd, nil
}
