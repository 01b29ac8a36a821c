package service

import "bookstore-api/internal/domain"

type CategoryDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type BookDTO struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	CategoryID  int     `json:"categoryId"`
	// CategoryName is resolved from the owning category at read time,
	// never stored.
	CategoryName string `json:"categoryName"`
}

type AuthResponse struct {
	Token    string `json:"token"`
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	Email    string `json:"email"`
}

func toCategoryDTO(c *domain.Category) *CategoryDTO {
	return &CategoryDTO{ID: c.ID, Name: c.Name}
}

func toBookDTO(b *domain.Book) *BookDTO {
	dto := &BookDTO{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Price:       b.Price,
		CategoryID:  b.CategoryID,
	}
	if b.Category != nil {
		dto.CategoryName = b.Category.Name
	}
	return dto
}
