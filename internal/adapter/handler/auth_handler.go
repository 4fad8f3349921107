package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gustavo-ramos/newsfeed-backend/internal/adapter/handler/dto/request"
	"github.com/gustavo-ramos/newsfeed-backend/internal/adapter/handler/dto/response"
	"github.com/gustavo-ramos/newsfeed-backend/internal/domain"
	"github.com/gustavo-ramos/newsfeed-backend/internal/pkg/httputil"
	"github.com/gustavo-ramos/newsfeed-backend/internal/usecase/auth"
)

const minPasswordLength = 8

type AuthHandler struct {
	authSvc AuthService
}

func NewAuthHandler(authSvc AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Signup godoc
//
//	@Summary		Register a new user
//	@Description	Create a new user account with an optional preferences list
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		request.SignupRequest	true	"Signup data"
//	@Success		200		{object}	httputil.MessageResponse
//	@Failure		400		{object}	httputil.MessageResponse
//	@Failure		409		{object}	httputil.MessageResponse	"Email already in use"
//	@Router			/users/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req request.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	if req.Name == "" || req.Email == "" {
		httputil.Error(c, http.StatusBadRequest, "name and email are required fields")
		return
	}

	// Checked before any hashing work.
	if len(req.Password) < minPasswordLength {
		httputil.Error(c, http.StatusBadRequest, "Password must be at least 8 characters long")
		return
	}

	_, err := h.authSvc.Signup(c.Request.Context(), auth.SignupInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		Preferences: req.Preferences,
	})
	if err != nil {
		var validationErr *domain.ValidationError
		switch {
		case errors.Is(err, domain.ErrUserAlreadyExists):
			httputil.Error(c, http.StatusConflict, "Email already in use")
		case errors.As(err, &validationErr):
			httputil.Error(c, http.StatusBadRequest, validationErr.Message)
		default:
			httputil.InternalError(c, err)
		}
		return
	}

	httputil.Message(c, http.StatusOK, "User registered successfully")
}

// Login godoc
//
//	@Summary		Login user
//	@Description	Authenticate a user and return a bearer token
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		request.LoginRequest	true	"Login credentials"
//	@Success		200		{object}	response.LoginResponse
//	@Failure		401		{object}	httputil.MessageResponse	"Incorrect email or password"
//	@Router			/users/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			httputil.Error(c, http.StatusUnauthorized, "Incorrect email or password")
			return
		}
		httputil.InternalError(c, err)
		return
	}

	httputil.OK(c, response.LoginResponse{
		Message: "Successfully logged in",
		ID:      result.User.ID,
		Token:   result.Token,
	})
}
