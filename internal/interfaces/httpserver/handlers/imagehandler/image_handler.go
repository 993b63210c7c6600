package imagehandler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/posty-app/post-api/internal/domain/conversation"
	"github.com/posty-app/post-api/internal/domain/flow"
	"github.com/posty-app/post-api/internal/domain/image"
	"github.com/posty-app/post-api/internal/interfaces/httpserver/requests/imagereq"
	"github.com/posty-app/post-api/internal/interfaces/httpserver/responses"
	"github.com/posty-app/post-api/internal/utils/platformerrors"
)

// ImageHandler exposes image suggestion, search and selection over HTTP.
type ImageHandler struct {
	resolver *image.Resolver
	sessions *conversation.SessionService
	validate *validator.Validate
}

func NewImageHandler(resolver *image.Resolver, sessions *conversation.SessionService) *ImageHandler {
	return &ImageHandler{
		resolver: resolver,
		sessions: sessions,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Suggest returns ranked image suggestions for a generated post. The briefing
// comes from the referenced session when one is given, otherwise from the
// explicit payload fields.
func (h *ImageHandler) Suggest(reqCtx *gin.Context) {
	var req imagereq.SuggestRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "invalid suggestion payload")
		return
	}

	data := flow.Data(req.Data)
	content := req.Content
	description := req.ImageDescription

	if req.SessionID != "" {
		session, err := h.sessions.Get(reqCtx.Request.Context(), req.SessionID)
		if err != nil {
			responses.HandleError(reqCtx, err, "session not found")
			return
		}
		data = session.Engine.Data()
		if generated := session.Engine.Post(); generated != nil {
			content = generated.Content
			description = generated.ImageDescription
		}
	}
	if data == nil {
		data = flow.Data{}
	}

	result := h.resolver.SmartSuggest(reqCtx.Request.Context(), data, content, description)
	reqCtx.JSON(http.StatusOK, result)
}

// Search runs a manual query against one source or all of them.
func (h *ImageHandler) Search(reqCtx *gin.Context) {
	var req imagereq.SearchRequest
	if err := reqCtx.ShouldBindQuery(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "invalid search query")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "query is required")
		return
	}

	result := h.resolver.Search(reqCtx.Request.Context(), image.Source(req.Source), req.Query, req.Page, req.PerPage, flow.Data{})
	reqCtx.JSON(http.StatusOK, result)
}

// Curated returns the editorial photo feed.
func (h *ImageHandler) Curated(reqCtx *gin.Context) {
	var req imagereq.CuratedRequest
	if err := reqCtx.ShouldBindQuery(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "invalid curated query")
		return
	}

	result := h.resolver.Curated(reqCtx.Request.Context(), req.Page, req.PerPage)
	reqCtx.JSON(http.StatusOK, result)
}

// Select finalizes the choice of a candidate and returns a usable URL.
func (h *ImageHandler) Select(reqCtx *gin.Context) {
	var req imagereq.SelectRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "invalid selection payload")
		return
	}
	if req.Candidate.URLs.Regular == "" && req.Candidate.URLs.Full == "" {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "candidate has no usable url")
		return
	}

	selection := h.resolver.Select(reqCtx.Request.Context(), req.Candidate)
	reqCtx.JSON(http.StatusOK, selection)
}
