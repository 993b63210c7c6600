package imagereq

import "github.com/posty-app/post-api/internal/domain/image"

// SuggestRequest asks for image suggestions for a generated post. Either a
// session id or the explicit briefing data must be present; the session wins
// when both are sent.
type SuggestRequest struct {
	SessionID        string            `json:"session_id"`
	Data             map[string]string `json:"data"`
	Content          string            `json:"content"`
	ImageDescription string            `json:"image_description"`
}

// SearchRequest is the query-string form of a manual image search.
type SearchRequest struct {
	Query   string `form:"query" validate:"required"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
	Source  string `form:"source"`
}

// CuratedRequest pages through the curated feed.
type CuratedRequest struct {
	Page    int `form:"page"`
	PerPage int `form:"per_page"`
}

// SelectRequest finalizes the choice of one candidate.
type SelectRequest struct {
	Candidate image.Candidate `json:"candidate" validate:"required"`
}
