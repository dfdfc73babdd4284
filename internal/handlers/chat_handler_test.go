package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "patrimonio/internal/errors"
	"patrimonio/internal/models"
	"patrimonio/internal/services"
)

// --- mock chat service ---

type mockChatService struct {
	sendMessageFn  func(ctx context.Context, message, mode, contextText string) (*services.ChatReply, error)
	getHistoryFn   func() ([]models.ChatHistory, error)
	clearHistoryFn func() error
}

func (m *mockChatService) SendMessage(ctx context.Context, message, mode, contextText string) (*services.ChatReply, error) {
	if m.sendMessageFn != nil {
		return m.sendMessageFn(ctx, message, mode, contextText)
	}
	return &services.ChatReply{}, nil
}

func (m *mockChatService) GetHistory() ([]models.ChatHistory, error) {
	if m.getHistoryFn != nil {
		return m.getHistoryFn()
	}
	return []models.ChatHistory{}, nil
}

func (m *mockChatService) ClearHistory() error {
	if m.clearHistoryFn != nil {
		return m.clearHistoryFn()
	}
	return nil
}

var _ services.ChatServicer = (*mockChatService)(nil)

func setupChatRouter(handler *ChatHandler) *gin.Engine {
	r := gin.New()
	r.POST("/chat", handler.Chat)
	r.GET("/chat/history", handler.GetHistory)
	r.DELETE("/chat/history", handler.ClearHistory)
	return r
}

// --- tests ---

func TestChatHandler_Chat(t *testing.T) {
	t.Run("returns reply", func(t *testing.T) {
		var gotMessage, gotMode, gotContext string
		svc := &mockChatService{
			sendMessageFn: func(_ context.Context, message, mode, contextText string) (*services.ChatReply, error) {
				gotMessage, gotMode, gotContext = message, mode, contextText
				return &services.ChatReply{Response: "Compra Bitcoin.", Timestamp: time.Now().UTC()}, nil
			},
		}
		r := setupChatRouter(NewChatHandler(svc))

		rec := doRequest(r, "POST", "/chat",
			`{"message":"Que compro?","mode":"sovereign","context":"Portfolio: 60% BTC"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotMessage != "Que compro?" || gotMode != "sovereign" || gotContext != "Portfolio: 60% BTC" {
			t.Errorf("unexpected service arguments: %q %q %q", gotMessage, gotMode, gotContext)
		}
		result := parseJSON(t, rec)
		if result["response"] != "Compra Bitcoin." {
			t.Errorf("expected reply response, got %v", result["response"])
		}
		if result["timestamp"] == nil {
			t.Error("expected timestamp in reply")
		}
	})

	t.Run("missing message returns 400", func(t *testing.T) {
		svc := &mockChatService{
			sendMessageFn: func(_ context.Context, message, mode, contextText string) (*services.ChatReply, error) {
				return nil, apperrors.ErrMessageRequired
			},
		}
		r := setupChatRouter(NewChatHandler(svc))

		rec := doRequest(r, "POST", "/chat", `{}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
		}
		assertErrorCode(t, parseJSON(t, rec), "MESSAGE_REQUIRED")
	})

	t.Run("missing key returns 500", func(t *testing.T) {
		svc := &mockChatService{
			sendMessageFn: func(_ context.Context, message, mode, contextText string) (*services.ChatReply, error) {
				return nil, apperrors.ErrChatNotConfigured
			},
		}
		r := setupChatRouter(NewChatHandler(svc))

		rec := doRequest(r, "POST", "/chat", `{"message":"hola"}`)

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d: %s", rec.Code, rec.Body.String())
		}
		assertErrorCode(t, parseJSON(t, rec), "CHAT_NOT_CONFIGURED")
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		r := setupChatRouter(NewChatHandler(&mockChatService{}))

		rec := doRequest(r, "POST", "/chat", `{not json`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
		}
	})
}

func TestChatHandler_GetHistory(t *testing.T) {
	svc := &mockChatService{
		getHistoryFn: func() ([]models.ChatHistory, error) {
			return []models.ChatHistory{
				{ID: 1, Role: models.ChatRoleUser, Content: "hola", Mode: "normie"},
				{ID: 2, Role: models.ChatRoleAssistant, Content: "buenas", Mode: "normie"},
			}, nil
		},
	}
	r := setupChatRouter(NewChatHandler(svc))

	rec := doRequest(r, "GET", "/chat/history", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSONArray(t, rec)
	if len(result) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(result))
	}
	first := result[0].(map[string]interface{})
	if first["role"] != "user" || first["content"] != "hola" {
		t.Errorf("unexpected first entry: %v", first)
	}
}

func TestChatHandler_ClearHistory(t *testing.T) {
	cleared := false
	svc := &mockChatService{
		clearHistoryFn: func() error {
			cleared = true
			return nil
		},
	}
	r := setupChatRouter(NewChatHandler(svc))

	rec := doRequest(r, "DELETE", "/chat/history", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !cleared {
		t.Error("expected service ClearHistory to be called")
	}
	result := parseJSON(t, rec)
	if result["message"] != "Chat history cleared" {
		t.Errorf("expected ack message, got %v", result["message"])
	}
}
