package service

import (
	"context"
	"time"

	"bookstore-api/internal/core/cache"
	"bookstore-api/internal/domain"
)

type BookService struct {
	books      domain.BookRepository
	categories domain.CategoryRepository

	cache    *cache.Cache
	cacheTTL time.Duration
}

func NewBookService(books domain.BookRepository, categories domain.CategoryRepository) *BookService {
	return &BookService{books: books, categories: categories}
}

func (s *BookService) WithCache(c *cache.Cache, ttl time.Duration) *BookService {
	s.cache = c
	s.cacheTTL = ttl
	return s
}

func (s *BookService) List(ctx context.Context) (Result[[]BookDTO], error) {
	load := func(context.Context) ([]BookDTO, error) {
		books, err := s.books.List()
		if err != nil {
			return nil, err
		}
		dtos := make([]BookDTO, 0, len(books))
		for i := range books {
			dtos = append(dtos, *toBookDTO(&books[i]))
		}
		return dtos, nil
	}

	var dtos []BookDTO
	var err error
	if s.cache != nil {
		dtos, err = cache.GetOrLoadJSON(s.cache, ctx, bookListKey, s.cacheTTL, load)
	} else {
		dtos, err = load(ctx)
	}
	if err != nil {
		return Fail[[]BookDTO]("Failed to retrieve books."), err
	}
	if dtos == nil {
		dtos = []BookDTO{}
	}
	return OK(dtos, "Books retrieved successfully."), nil
}

func (s *BookService) GetByID(ctx context.Context, id int) (Result[*BookDTO], error) {
	b, err := s.books.FindByID(id)
	if err != nil {
		return Fail[*BookDTO]("Failed to retrieve book."), err
	}
	if b == nil {
		return Fail[*BookDTO]("Book not found."), nil
	}
	return OK(toBookDTO(b), "Book retrieved successfully."), nil
}

// Create resolves the category before anything is written: a book
// with an unknown category is rejected without persisting a row.
func (s *BookService) Create(ctx context.Context, in BookDTO) (Result[*BookDTO], error) {
	cat, err := s.categories.FindByID(in.CategoryID)
	if err != nil {
		return Fail[*BookDTO]("Failed to add book."), err
	}
	if cat == nil {
		return Fail[*BookDTO]("Category does not exist."), nil
	}

	b := &domain.Book{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		CategoryID:  in.CategoryID,
	}
	if err := s.books.Create(b); err != nil {
		return Fail[*BookDTO]("Failed to add book."), err
	}
	s.invalidate(ctx, bookListKey)

	dto := toBookDTO(b)
	dto.CategoryName = cat.Name
	return OK(dto, "Book added successfully."), nil
}

// Update re-validates the category and rejects the whole update when
// it is missing; the stored record is left untouched.
func (s *BookService) Update(ctx context.Context, in BookDTO) (Result[bool], error) {
	b, err := s.books.FindByID(in.ID)
	if err != nil {
		return Fail[bool]("Failed to update book."), err
	}
	if b == nil {
		return Fail[bool]("Book not found."), nil
	}

	cat, err := s.categories.FindByID(in.CategoryID)
	if err != nil {
		return Fail[bool]("Failed to update book."), err
	}
	if cat == nil {
		return Fail[bool]("Category does not exist."), nil
	}

	b.Name = in.Name
	b.Description = in.Description
	b.Price = in.Price
	b.CategoryID = in.CategoryID
	b.Category = nil
	if err := s.books.Update(b); err != nil {
		return Fail[bool]("Failed to update book."), err
	}
	s.invalidate(ctx, bookListKey)
	return OK(true, "Book updated successfully."), nil
}

func (s *BookService) Delete(ctx context.Context, id int) (Result[bool], error) {
	b, err := s.books.FindByID(id)
	if err != nil {
		return Fail[bool]("Failed to delete book."), err
	}
	if b == nil {
		return Fail[bool]("Book not found."), nil
	}
	if err := s.books.Delete(id); err != nil {
		return Fail[bool]("Failed to delete book."), err
	}
	s.invalidate(ctx, bookListKey)
	return OK(true, "Book deleted successfully."), nil
}

func (s *BookService) invalidate(ctx context.Context, keys ...string) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, keys...)
	}
}
