package chatres

import (
	"github.com/posty-app/post-api/internal/domain/conversation"
	"github.com/posty-app/post-api/internal/domain/flow"
	"github.com/posty-app/post-api/internal/domain/post"
)

// SessionResponse is the full snapshot of one conversation.
type SessionResponse struct {
	ID       string                 `json:"id"`
	State    conversation.State     `json:"state"`
	Data     flow.Data              `json:"data"`
	Messages []conversation.Message `json:"messages"`
	Post     *post.GeneratedPost    `json:"post,omitempty"`
}

// AnswerResponse carries the messages produced by one interaction and the
// resulting state.
type AnswerResponse struct {
	State    conversation.State     `json:"state"`
	Messages []conversation.Message `json:"messages"`
}
