package hello

// Data models the response payload for hello endpoints.
type Data struct {
	Message string `json:"message" doc:"Greeting message" example:"Hello, Ada!"`
}

// GetOutput is the response wrapper for GET /hello.
type GetOutput struct {
	Body Data
}

// CreateOutput is the response wrapper for POST /hello.
type CreateOutput struct {
	Body Data
}
