// FILE: internal/dto/loading_dto.go
package dto

// LoadingSessionRequest configures a new loading-indicator session. Both
// fields are optional; defaults come from config.
type LoadingSessionRequest struct {
	TimeoutMs *int `json:"timeout_ms,omitempty" validate:"omitempty,min=1,max=3600000"`
	Size      *int `json:"size,omitempty" validate:"omitempty,min=1,max=512"`
}

type LoadingSessionResponse struct {
	Id        string `json:"id"`
	Size      int    `json:"size"`
	TimeoutMs int    `json:"timeout_ms"`
}

type LoadingStateResponse struct {
	Id             string `json:"id"`
	ElapsedSeconds int    `json:"elapsed_seconds"`
	TimeoutReached bool   `json:"timeout_reached"`
}
