package conversation

import (
	"time"

	"github.com/google/uuid"

	"github.com/posty-app/post-api/internal/domain/post"
)

// Role distinguishes who authored a message in the dialog transcript.
type Role string

const (
	RoleAI   Role = "ai"
	RoleUser Role = "user"
)

// Message is one entry in the conversation transcript. Question messages
// carry the options of the step they present; the final message carries the
// generated post.
type Message struct {
	ID          string              `json:"id"`
	Role        Role                `json:"role"`
	Content     string              `json:"content"`
	Options     []string            `json:"options,omitempty"`
	MultiSelect bool                `json:"multi_select,omitempty"`
	Generating  bool                `json:"generating,omitempty"`
	Error       bool                `json:"error,omitempty"`
	Post        *post.GeneratedPost `json:"post,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}

func newMessage(role Role, content string) Message {
	return Message{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
}
