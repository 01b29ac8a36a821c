package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bookstore-api/internal/service"
)

type BookHandler struct {
	books *service.BookService
}

func NewBookHandler(books *service.BookService) *BookHandler {
	return &BookHandler{books: books}
}

type bookRequest struct {
	ID          int     `json:"id"`
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"min=0"`
	CategoryID  int     `json:"categoryId" binding:"required"`
}

func (r bookRequest) dto() service.BookDTO {
	return service.BookDTO{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		CategoryID:  r.CategoryID,
	}
}

func (h *BookHandler) List(c *gin.Context) {
	result, err := h.books.List(c.Request.Context())
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

func (h *BookHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, service.Fail[any]("Invalid id."))
		return
	}
	result, err := h.books.GetByID(c.Request.Context(), id)
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

func (h *BookHandler) Create(c *gin.Context) {
	var in bookRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, service.Fail[any](err.Error()))
		return
	}
	result, err := h.books.Create(c.Request.Context(), in.dto())
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

func (h *BookHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, service.Fail[any]("Invalid id."))
		return
	}
	var in bookRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, service.Fail[any](err.Error()))
		return
	}
	if id != in.ID {
		c.JSON(http.StatusBadRequest, service.Fail[bool]("Mismatched ID."))
		return
	}
	result, err := h.books.Update(c.Request.Context(), in.dto())
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

func (h *BookHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, service.Fail[any]("Invalid id."))
		return
	}
	result, err := h.books.Delete(c.Request.Context(), id)
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
