package handlers

import (
	"errors"
	"net/http"

	"todo_tracker/internal/repository"
	"todo_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// Response bodies follow the original API's single-key contract. Credential
// failures share one message for unknown user and wrong password.
const (
	msgRegistered         = "Registration successful"
	msgUsernameTaken      = "Username already taken"
	msgInvalidCredentials = "Invalid credentials"
	msgBadRequestBody     = "Username and password are required"
	msgServerError        = "Server error"
)

// Single, shared credentials payload for both register and login.
type authCredentials struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled, true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("auth_bad_request_body", "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": msgBadRequestBody})
		return false
	}
	return true
}

// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body   authCredentials  true  "Credentials"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var input authCredentials
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	if _, err := h.services.SignUp(input.Username, input.Password); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			c.JSON(http.StatusBadRequest, gin.H{"message": msgUsernameTaken})
			return
		}
		if errors.Is(err, service.ErrEmptyCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"message": msgBadRequestBody})
			return
		}
		if h.log != nil {
			h.log.Errorw("auth_register_failed", "username", input.Username, "err", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": msgServerError})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": msgRegistered})
}

// @Summary      Log in and receive a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body   authCredentials  true  "Credentials"
// @Success      200   {object}  map[string]string  "token, username"
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input authCredentials
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	token, err := h.services.GenerateToken(input.Username, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// Same body whether the username is unknown or the password is
			// wrong; login failures never reveal which one it was.
			if h.log != nil {
				h.log.Infow("auth_login_rejected", "username", input.Username)
			}
			c.JSON(http.StatusBadRequest, gin.H{"message": msgInvalidCredentials})
			return
		}
		if h.log != nil {
			h.log.Errorw("auth_login_failed", "username", input.Username, "err", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": msgServerError})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "username": input.Username})
}
