package gemini

const (
	DefaultModel = "gemini-2.5-flash"

	RoleUser  = "user"
	RoleModel = "model"
)
