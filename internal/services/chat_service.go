package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/007PR/aura/internal/api"
	"github.com/007PR/aura/internal/models"
)

const fallbackReply = "Mercury retrograde is messing with the connection. Try again?"

type chatAPI interface {
	Chat(ctx context.Context, req api.ChatRequest) (api.ChatReply, error)
}

// ChatService holds the assistant conversation. The transcript is
// append-only: a failed send keeps the user's message and records the
// failure as an assistant turn, so the history the server sees next time
// matches what the user saw.
type ChatService struct {
	api chatAPI

	userID   string
	mode     models.ChatMode
	typing   bool
	messages []models.ChatMessage
}

func NewChatService(apiClient chatAPI, user models.User) *ChatService {
	greeting := fmt.Sprintf("Hey %s! ✨ I've been looking at your chart and we need to TALK. What's on your mind?", user.Name)
	return &ChatService{
		api:    apiClient,
		userID: user.ID,
		mode:   models.ModeBestie,
		messages: []models.ChatMessage{
			{ID: uuid.NewString(), Role: models.RoleAssistant, Text: greeting},
		},
	}
}

func (c *ChatService) Mode() models.ChatMode { return c.mode }
func (c *ChatService) Typing() bool          { return c.typing }

// Messages returns a copy of the transcript.
func (c *ChatService) Messages() []models.ChatMessage {
	out := make([]models.ChatMessage, len(c.messages))
	copy(out, c.messages)
	return out
}

// SetMode switches between the bestie and guru personas. Unknown modes
// are ignored.
func (c *ChatService) SetMode(mode models.ChatMode) {
	if !mode.Valid() {
		return
	}
	c.mode = mode
}

// Suggestions returns the quick-prompt chips for the active mode.
func (c *ChatService) Suggestions() []string {
	if c.mode == models.ModeGuru {
		return []string{"Read my Kundli", "Marriage timing", "Career guidance", "Dasha analysis"}
	}
	return []string{"Should I text them? 📱", "Why am I anxious?", "Will this week be good?", "Roast me 🔥"}
}

// Send posts the user's message and appends the assistant reply. An API
// failure is absorbed into the transcript as an assistant message and is
// not returned as an error.
func (c *ChatService) Send(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrInvalidInput
	}

	history := make([]api.ChatTurn, 0, len(c.messages))
	for _, m := range c.messages {
		history = append(history, api.ChatTurn{Role: string(m.Role), Content: m.Text})
	}

	c.messages = append(c.messages, models.ChatMessage{
		ID:   uuid.NewString(),
		Role: models.RoleUser,
		Text: text,
	})
	c.typing = true
	defer func() { c.typing = false }()

	reply, err := c.api.Chat(ctx, api.ChatRequest{
		UserID:  c.userID,
		Message: text,
		Mode:    c.mode,
		History: history,
	})

	replyText := reply.Reply
	if err != nil {
		replyText = err.Error()
		if replyText == "" {
			replyText = fallbackReply
		}
	}
	c.messages = append(c.messages, models.ChatMessage{
		ID:   uuid.NewString(),
		Role: models.RoleAssistant,
		Text: replyText,
	})
	return nil
}
