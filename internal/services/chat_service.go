package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"patrimonio/internal/clients/gemini"
	apperrors "patrimonio/internal/errors"
	"patrimonio/internal/models"
)

const defaultChatMode = "normie"

// TextGenerator is the upstream surface the chat proxy depends on.
// *gemini.Client satisfies it; tests substitute a fake.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// chatService forwards user messages to the generative API and persists
// both sides of each exchange.
type chatService struct {
	db        *gorm.DB
	generator TextGenerator
	apiKey    string
}

// NewChatService creates a new ChatServicer. The API key is checked per
// request so a missing credential surfaces as a configuration error rather
// than a startup failure.
func NewChatService(db *gorm.DB, apiKey string, generator TextGenerator) ChatServicer {
	return &chatService{db: db, generator: generator, apiKey: apiKey}
}

// SendMessage forwards the message with its prepended context to the
// generative API, persists the user/assistant pair, and returns the reply.
func (s *chatService) SendMessage(ctx context.Context, message, mode, contextText string) (*ChatReply, error) {
	if message == "" {
		return nil, apperrors.ErrMessageRequired
	}
	if mode == "" {
		mode = defaultChatMode
	}
	if s.apiKey == "" {
		return nil, apperrors.ErrChatNotConfigured
	}

	prompt := contextText + "\n\nPregunta: " + message

	reply, err := s.generator.GenerateContent(ctx, prompt)
	if err != nil {
		var statusErr *gemini.StatusError
		if errors.As(err, &statusErr) {
			// Raw upstream body rides along for diagnostics.
			return nil, apperrors.Wrap(
				apperrors.WithMessage(apperrors.ErrChatUpstream, "Gemini API error: "+statusErr.Body),
				statusErr)
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	// Both rows commit together; the reply is only returned once the
	// exchange is on record.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		userEntry := &models.ChatHistory{Role: models.ChatRoleUser, Content: message, Mode: mode}
		if txErr := tx.Create(userEntry).Error; txErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}
		assistantEntry := &models.ChatHistory{Role: models.ChatRoleAssistant, Content: reply, Mode: mode}
		if txErr := tx.Create(assistantEntry).Error; txErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ChatReply{Response: reply, Timestamp: time.Now().UTC()}, nil
}

// GetHistory returns the full chat log, oldest first.
func (s *chatService) GetHistory() ([]models.ChatHistory, error) {
	entries := []models.ChatHistory{}
	if err := s.db.Order("created_at ASC, id ASC").Find(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return entries, nil
}

// ClearHistory wipes the chat log.
func (s *chatService) ClearHistory() error {
	if err := s.db.Where("1 = 1").Delete(&models.ChatHistory{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
