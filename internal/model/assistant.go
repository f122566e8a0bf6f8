package model

// AssistantRequest is the payload for the AI menu assistant. Whitespace-only
// messages pass binding and are rejected by the assistant service instead.
type AssistantRequest struct {
	Message string `json:"message" binding:"required,max=2000"`
}
