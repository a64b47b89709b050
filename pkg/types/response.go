package types

// ErrorResponse is the wire shape for all failed requests. Details is only
// populated outside production.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// MessageResponse carries a human message plus the affected entity id, used
// by enquiry mutations.
type MessageResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
	Status  string `json:"status,omitempty"`
}

// HealthResponse is the liveness probe payload.
type HealthResponse struct {
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
	Platform    string `json:"platform"`
}
