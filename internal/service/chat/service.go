package chat

import (
	"fmt"
	"strings"
	"time"

	"github.com/shifahealth/clinic-portal/internal/model"
	"github.com/shifahealth/clinic-portal/internal/repository"
	"github.com/shifahealth/clinic-portal/internal/responder"
	apperrors "github.com/shifahealth/clinic-portal/pkg/errors"
	"github.com/shifahealth/clinic-portal/pkg/logger"
)

const welcomeTemplate = `Hello %s! I'm your AI medical assistant. I can help you with:

• Booking appointments with doctors
• Answering general health questions
• Providing hospital information
• Emergency assistance guidance
• Medication reminders

How can I help you today?`

// Service runs the conversation loop around the responder: the user
// message is persisted first, then the reply is generated from the live
// doctor snapshot and persisted too, so the transcript is durable
// regardless of what the presentation layer does with the result.
type Service struct {
	chats   *repository.ChatRepository
	doctors *repository.DoctorRepository
	logger  *logger.Logger
}

func NewService(chats *repository.ChatRepository, doctors *repository.DoctorRepository, log *logger.Logger) *Service {
	return &Service{chats: chats, doctors: doctors, logger: log}
}

// Send records the patient's message and the generated reply, returning
// both in order.
func (s *Service) Send(patient model.Patient, text string) (user, bot model.ChatMessage, err error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return user, bot, apperrors.BadRequest("message is empty", nil)
	}

	user = model.ChatMessage{
		ID:        model.NewID("msg"),
		Type:      model.MessageTypeUser,
		Message:   text,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		PatientID: patient.ID,
	}
	if putErr := s.chats.Put(user); putErr != nil {
		return user, bot, fmt.Errorf("failed to persist message: %w", putErr)
	}

	bot = model.ChatMessage{
		ID:        model.NewID("msg"),
		Type:      model.MessageTypeBot,
		Message:   responder.Respond(text, s.doctors.All()),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		PatientID: patient.ID,
	}
	if putErr := s.chats.Put(bot); putErr != nil {
		return user, bot, fmt.Errorf("failed to persist reply: %w", putErr)
	}
	return user, bot, nil
}

// EnsureWelcome inserts the personalized greeting when the patient has
// no transcript yet. Reports whether a message was added.
func (s *Service) EnsureWelcome(patient model.Patient) (model.ChatMessage, bool, error) {
	if len(s.chats.History(patient.ID)) > 0 {
		return model.ChatMessage{}, false, nil
	}

	welcome := model.ChatMessage{
		ID:        model.NewID("msg"),
		Type:      model.MessageTypeBot,
		Message:   fmt.Sprintf(welcomeTemplate, patient.Name),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		PatientID: patient.ID,
	}
	if err := s.chats.Put(welcome); err != nil {
		return model.ChatMessage{}, false, fmt.Errorf("failed to persist welcome: %w", err)
	}
	return welcome, true, nil
}

// History returns the transcript, optionally scoped to one patient.
func (s *Service) History(patientID string) []model.ChatMessage {
	return s.chats.History(patientID)
}

// Clear wipes the whole transcript.
func (s *Service) Clear() error {
	return s.chats.Clear()
}
