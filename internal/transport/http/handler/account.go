package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookstore-api/internal/service"
)

type AccountHandler struct {
	auth *service.AuthService
}

func NewAccountHandler(auth *service.AuthService) *AccountHandler {
	return &AccountHandler{auth: auth}
}

type registerRequest struct {
	UserName string `json:"userName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AccountHandler) Register(c *gin.Context) {
	var in registerRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, service.Fail[any](err.Error()))
		return
	}
	result, err := h.auth.Register(in.UserName, in.Email, in.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, result)
		return
	}
	if !result.Success {
		c.JSON(http.StatusBadRequest, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *AccountHandler) Login(c *gin.Context) {
	var in loginRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, service.Fail[any](err.Error()))
		return
	}
	result, err := h.auth.Login(in.Email, in.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, result)
		return
	}
	if !result.Success {
		c.JSON(http.StatusUnauthorized, result)
		return
	}
	c.JSON(http.StatusOK, result)
}
