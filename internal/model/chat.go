package model

type MessageType string

const (
	MessageTypeUser MessageType = "user"
	MessageTypeBot  MessageType = "bot"
)

// ChatMessage is one line of a patient's transcript. PatientID is empty
// for system-initiated messages.
type ChatMessage struct {
	ID        string      `json:"id"`
	Type      MessageType `json:"type"`
	Message   string      `json:"message"`
	Timestamp string      `json:"timestamp"`
	PatientID string      `json:"patientId,omitempty"`
}

func (m ChatMessage) EntityID() string { return m.ID }
