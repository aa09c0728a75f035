package repository

import (
	"github.com/shifahealth/clinic-portal/internal/model"
	"github.com/shifahealth/clinic-portal/internal/storage"
	"github.com/shifahealth/clinic-portal/pkg/logger"
	"github.com/shifahealth/clinic-portal/pkg/metrics"
)

type ChatRepository struct {
	*Collection[model.ChatMessage]
}

func NewChatRepository(store *storage.Store, log *logger.Logger, m *metrics.Metrics) *ChatRepository {
	return &ChatRepository{
		Collection: NewCollection[model.ChatMessage](store, storage.CollectionChatHistory, log, m),
	}
}

// History returns the transcript, optionally narrowed to one patient.
// An empty patientID returns every message.
func (r *ChatRepository) History(patientID string) []model.ChatMessage {
	if patientID == "" {
		return r.All()
	}
	results := []model.ChatMessage{}
	for _, msg := range r.All() {
		if msg.PatientID == patientID {
			results = append(results, msg)
		}
	}
	return results
}

// Clear replaces the transcript with an empty collection.
func (r *ChatRepository) Clear() error {
	return r.Replace([]model.ChatMessage{})
}
