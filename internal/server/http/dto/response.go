package dto

// DefaultMessage is the envelope message used unless a handler overrides it.
const DefaultMessage = "Ok"

// APIResponse is the fixed envelope wrapping every endpoint payload.
type APIResponse struct {
	Data    any    `json:"data"`
	Message string `json:"message"`
}

// NewAPIResponse wraps payload with the default message.
func NewAPIResponse(data any) APIResponse {
	return APIResponse{Data: data, Message: DefaultMessage}
}

// MessagePayload carries a human readable message inside the data field.
type MessagePayload struct {
	Message string `json:"message"`
}
