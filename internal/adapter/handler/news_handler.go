package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gustavo-ramos/newsfeed-backend/internal/adapter/handler/dto/response"
	"github.com/gustavo-ramos/newsfeed-backend/internal/domain"
	"github.com/gustavo-ramos/newsfeed-backend/internal/pkg/httputil"
)

type NewsHandler struct {
	newsSvc NewsService
}

func NewNewsHandler(newsSvc NewsService) *NewsHandler {
	return &NewsHandler{newsSvc: newsSvc}
}

// Fetch godoc
//
//	@Summary		Fetch personalized headlines
//	@Description	Query the news provider scoped to the user's preferences
//	@Tags			news
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	response.NewsResponse
//	@Failure		401	{object}	httputil.MessageResponse
//	@Failure		404	{object}	httputil.MessageResponse	"User not found"
//	@Failure		503	{object}	httputil.MessageResponse	"Unable to connect to news service"
//	@Router			/news [get]
func (h *NewsHandler) Fetch(c *gin.Context) {
	userID := httputil.GetUserID(c)

	payload, err := h.newsSvc.Fetch(c.Request.Context(), userID)
	if err != nil {
		var upstreamErr *domain.UpstreamError
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			httputil.Error(c, http.StatusNotFound, "User not found")
		case errors.As(err, &upstreamErr):
			// Provider responded with an error: relay its status and message.
			httputil.Error(c, upstreamErr.StatusCode, "News API error: "+upstreamErr.Message)
		case errors.Is(err, domain.ErrUpstreamUnavailable):
			httputil.Error(c, http.StatusServiceUnavailable, "Unable to connect to news service")
		default:
			httputil.InternalError(c, err)
		}
		return
	}

	httputil.OK(c, response.NewsResponse{
		Message: "News fetched successfully",
		News:    payload,
	})
}
