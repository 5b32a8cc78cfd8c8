package hello

// GetInput defines the optional username query parameter.
type GetInput struct {
	Username string `query:"username" doc:"Name to greet; blank greets User" example:"Ada" maxLength:"100"`
}

// CreateInput is the request body for creating a greeting.
type CreateInput struct {
	Body struct {
		Username string `json:"username,omitempty" doc:"Name to greet; blank greets User" example:"Ada" maxLength:"100"`
	}
}
