package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bookstore-api/internal/service"
)

type CategoryHandler struct {
	categories *service.CategoryService
}

func NewCategoryHandler(categories *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

type categoryRequest struct {
	ID   int    `json:"id"`
	Name string `json:"name" binding:"required"`
}

func (h *CategoryHandler) List(c *gin.Context) {
	result, err := h.categories.List(c.Request.Context())
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

func (h *CategoryHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, service.Fail[any]("Invalid id."))
		return
	}
	result, err := h.categories.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, result)
		return
	}
	if !result.Success {
		c.JSON(http.StatusNotFound, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var in categoryRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, service.Fail[any](err.Error()))
		return
	}
	result, err := h.categories.Create(c.Request.Context(), in.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, result)
		return
	}
	if !result.Success {
		c.JSON(http.StatusBadRequest, result)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, service.Fail[any]("Invalid id."))
		return
	}
	var in categoryRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, service.Fail[any](err.Error()))
		return
	}
	if id != in.ID {
		c.JSON(http.StatusBadRequest, service.Fail[bool]("Mismatched ID."))
		return
	}
	result, err := h.categories.Update(c.Request.Context(), id, in.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, result)
		return
	}
	if !result.Success {
		c.JSON(http.StatusNotFound, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, service.Fail[any]("Invalid id."))
		return
	}
	result, err := h.categories.Delete(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, result)
		return
	}
	if !result.Success {
		c.JSON(http.StatusNotFound, result)
		return
	}
	c.JSON(http.StatusOK, result)
}
