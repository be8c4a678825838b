package dto

// Envelope is the single response shape for every endpoint.
// Success is false exactly when Error is set; Total is only set by list endpoints.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
	Total   *int   `json:"total,omitempty"`
	Token   string `json:"token,omitempty"`
}

// OK wraps a single payload.
func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

// List wraps a sequence and its length.
func List[T any](items []T) Envelope {
	if items == nil {
		items = []T{}
	}
	total := len(items)
	return Envelope{Success: true, Data: items, Total: &total}
}

// Message wraps a confirmation message.
func Message(msg string) Envelope {
	return Envelope{Success: true, Message: msg}
}

// Token wraps a freshly issued bearer token.
func Token(token string) Envelope {
	return Envelope{Success: true, Token: token}
}

// Fail wraps an error message.
func Fail(msg string) Envelope {
	return Envelope{Success: false, Error: msg}
}
