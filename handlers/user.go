package handlers

import (
	"errors"
	"net/http"

	"doctorsportal/models"
	"doctorsportal/services/user"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves account, role and token endpoints.
type UserHandler struct {
	Service user.UserService
	Logger  *zap.Logger
}

// NewUserHandler wires a UserHandler.
func NewUserHandler(svc user.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{Service: svc, Logger: logger}
}

// CreateUser stores a new account from signup.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var input models.User
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Service.Register(input); err != nil {
		h.Logger.Error("failed to register user", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to register user", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"acknowledged": true})
}

// GetUsers lists every account.
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.Service.GetAll()
	if err != nil {
		h.Logger.Error("failed to list users", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load users", err.Error())
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetUserAdmin reports whether the email's account holds the admin role.
// An absent account reads as a plain false.
func (h *UserHandler) GetUserAdmin(c *gin.Context) {
	email := c.Param("email")

	isAdmin, err := h.Service.IsAdmin(email)
	if err != nil {
		h.Logger.Error("failed to check admin role", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to check role", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"isAdmin": isAdmin})
}

// MakeUserAdmin grants the admin role to the account with the given id.
func (h *UserHandler) MakeUserAdmin(c *gin.Context) {
	id := c.Param("id")

	if err := h.Service.GrantAdmin(id); err != nil {
		h.Logger.Error("failed to grant admin role", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to grant admin role", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "modifiedId": id})
}

// GetJWT issues a signed token for an email that resolves to an account.
// Unknown emails get a 403 and an empty accessToken, per the original portal.
func (h *UserHandler) GetJWT(c *gin.Context) {
	email := c.Query("email")

	token, err := h.Service.IssueToken(email)
	if err != nil {
		if errors.Is(err, user.ErrUnknownUser) {
			c.JSON(http.StatusForbidden, gin.H{"accessToken": ""})
			return
		}
		h.Logger.Error("failed to issue token", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue token", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"accessToken": token})
}
