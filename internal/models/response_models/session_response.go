package response_models

type SessionResponse struct {
	User UserResponse `json:"user"`
	// Degraded is set when the document store could not be reached: the
	// session stays authenticated but carries empty collections.
	Degraded bool   `json:"degraded"`
	Warning  string `json:"warning,omitempty"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
