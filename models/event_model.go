package models

// EventModel is a dashboard activity event registered with the backend
// /event endpoint.
type EventModel struct {
	EventType          string            `json:"eventType"`
	UserId             string            `json:"userId"`
	TemplateParameters map[string]string `json:"templateParameters,omitempty"`
}
