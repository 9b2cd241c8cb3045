package validation

// CreateUser validates the body of POST /users. The name-uniqueness check
// against live employees runs in the user service, after normalization.
func CreateUser(body map[string]any) (string, error) {
	return requiredString(body, "name", "Name", "Create User Failed.")
}
