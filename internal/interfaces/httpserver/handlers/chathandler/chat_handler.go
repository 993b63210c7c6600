package chathandler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/posty-app/post-api/internal/domain/conversation"
	"github.com/posty-app/post-api/internal/interfaces/httpserver/requests/chatreq"
	"github.com/posty-app/post-api/internal/interfaces/httpserver/responses"
	"github.com/posty-app/post-api/internal/interfaces/httpserver/responses/chatres"
	"github.com/posty-app/post-api/internal/utils/platformerrors"
)

// ChatHandler exposes the guided conversation over HTTP.
type ChatHandler struct {
	sessions *conversation.SessionService
	validate *validator.Validate
}

func NewChatHandler(sessions *conversation.SessionService) *ChatHandler {
	return &ChatHandler{
		sessions: sessions,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// CreateSession starts a conversation and returns the opening question.
func (h *ChatHandler) CreateSession(reqCtx *gin.Context) {
	session := h.sessions.Create(reqCtx.Request.Context())
	reqCtx.JSON(http.StatusCreated, h.snapshot(session))
}

// GetSession returns the full transcript and state of a conversation.
func (h *ChatHandler) GetSession(reqCtx *gin.Context) {
	session, err := h.sessions.Get(reqCtx.Request.Context(), reqCtx.Param("id"))
	if err != nil {
		responses.HandleError(reqCtx, err, "session not found")
		return
	}
	reqCtx.JSON(http.StatusOK, h.snapshot(session))
}

// SubmitAnswer records an answer for the current step.
func (h *ChatHandler) SubmitAnswer(reqCtx *gin.Context) {
	session, err := h.sessions.Get(reqCtx.Request.Context(), reqCtx.Param("id"))
	if err != nil {
		responses.HandleError(reqCtx, err, "session not found")
		return
	}

	var req chatreq.AnswerRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "invalid answer payload")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "value is required")
		return
	}

	added, err := session.Engine.SubmitAnswer(reqCtx.Request.Context(), req.Value, req.IsOption)
	if err != nil {
		responses.HandleError(reqCtx, err, "unable to process answer")
		return
	}

	state, _, _, _ := session.Engine.Snapshot()
	reqCtx.JSON(http.StatusOK, chatres.AnswerResponse{State: state, Messages: added})
}

// ConfirmTones finalizes the toggled options of the multi-select step.
func (h *ChatHandler) ConfirmTones(reqCtx *gin.Context) {
	session, err := h.sessions.Get(reqCtx.Request.Context(), reqCtx.Param("id"))
	if err != nil {
		responses.HandleError(reqCtx, err, "session not found")
		return
	}

	added, err := session.Engine.ConfirmMultiSelect(reqCtx.Request.Context())
	if err != nil {
		responses.HandleError(reqCtx, err, "unable to confirm selection")
		return
	}

	state, _, _, _ := session.Engine.Snapshot()
	reqCtx.JSON(http.StatusOK, chatres.AnswerResponse{State: state, Messages: added})
}

// Restart resets the conversation to the first question.
func (h *ChatHandler) Restart(reqCtx *gin.Context) {
	session, err := h.sessions.Get(reqCtx.Request.Context(), reqCtx.Param("id"))
	if err != nil {
		responses.HandleError(reqCtx, err, "session not found")
		return
	}

	messages := session.Engine.Restart()
	reqCtx.JSON(http.StatusOK, chatres.AnswerResponse{State: conversation.StateAsking, Messages: messages})
}

func (h *ChatHandler) snapshot(session *conversation.Session) chatres.SessionResponse {
	state, data, messages, generated := session.Engine.Snapshot()
	return chatres.SessionResponse{
		ID:       session.ID,
		State:    state,
		Data:     data,
		Messages: messages,
		Post:     generated,
	}
}
