package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gustavo-ramos/newsfeed-backend/internal/adapter/handler/dto/request"
	"github.com/gustavo-ramos/newsfeed-backend/internal/adapter/handler/dto/response"
	"github.com/gustavo-ramos/newsfeed-backend/internal/domain"
	"github.com/gustavo-ramos/newsfeed-backend/internal/pkg/httputil"
)

type PreferenceHandler struct {
	preferenceSvc PreferenceService
}

func NewPreferenceHandler(preferenceSvc PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{preferenceSvc: preferenceSvc}
}

// Get godoc
//
//	@Summary		Get preferences
//	@Description	Return the authenticated user's preference list
//	@Tags			users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	response.PreferencesResponse
//	@Failure		401	{object}	httputil.MessageResponse
//	@Failure		404	{object}	httputil.MessageResponse	"User not found"
//	@Router			/users/preferences [get]
func (h *PreferenceHandler) Get(c *gin.Context) {
	userID := httputil.GetUserID(c)

	preferences, err := h.preferenceSvc.Get(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			httputil.Error(c, http.StatusNotFound, "User not found")
			return
		}
		httputil.InternalError(c, err)
		return
	}

	httputil.OK(c, response.PreferencesResponse{Preferences: preferences})
}

// Update godoc
//
//	@Summary		Replace preferences
//	@Description	Replace the authenticated user's preference list wholesale
//	@Tags			users
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		request.UpdatePreferencesRequest	true	"New preference list"
//	@Success		200		{object}	httputil.MessageResponse
//	@Failure		400		{object}	httputil.MessageResponse	"preferences must be an array of strings"
//	@Failure		401		{object}	httputil.MessageResponse
//	@Failure		404		{object}	httputil.MessageResponse	"User not found"
//	@Router			/users/preferences [put]
func (h *PreferenceHandler) Update(c *gin.Context) {
	var req request.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.Error(c, http.StatusBadRequest, "preferences must be an array of strings")
		return
	}

	userID := httputil.GetUserID(c)

	if err := h.preferenceSvc.Update(c.Request.Context(), userID, *req.Preferences); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			httputil.Error(c, http.StatusNotFound, "User not found")
			return
		}
		httputil.InternalError(c, err)
		return
	}

	httputil.Message(c, http.StatusOK, "Preferences updated successfully")
}
