package adminhandler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/posty-app/post-api/internal/domain/image"
)

// AdminHandler exposes operational endpoints.
type AdminHandler struct {
	resolver *image.Resolver
}

func NewAdminHandler(resolver *image.Resolver) *AdminHandler {
	return &AdminHandler{resolver: resolver}
}

// ClearImageCache purges every cached generation result.
func (h *AdminHandler) ClearImageCache(reqCtx *gin.Context) {
	h.resolver.ClearCache()
	reqCtx.JSON(http.StatusOK, gin.H{"status": "cleared"})
}
