package service

import (
	"context"
	"time"

	"bookstore-api/internal/core/cache"
	"bookstore-api/internal/domain"
)

const (
	categoryListKey = "categories:list"
	bookListKey     = "books:list"
)

type CategoryService struct {
	categories domain.CategoryRepository

	// Optional read-through cache for the list endpoint. Nil when
	// caching is disabled; behavior is identical either way.
	cache    *cache.Cache
	cacheTTL time.Duration
}

func NewCategoryService(categories domain.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

func (s *CategoryService) WithCache(c *cache.Cache, ttl time.Duration) *CategoryService {
	s.cache = c
	s.cacheTTL = ttl
	return s
}

func (s *CategoryService) List(ctx context.Context) (Result[[]CategoryDTO], error) {
	load := func(context.Context) ([]CategoryDTO, error) {
		cats, err := s.categories.List()
		if err != nil {
			return nil, err
		}
		dtos := make([]CategoryDTO, 0, len(cats))
		for i := range cats {
			dtos = append(dtos, *toCategoryDTO(&cats[i]))
		}
		return dtos, nil
	}

	var dtos []CategoryDTO
	var err error
	if s.cache != nil {
		dtos, err = cache.GetOrLoadJSON(s.cache, ctx, categoryListKey, s.cacheTTL, load)
	} else {
		dtos, err = load(ctx)
	}
	if err != nil {
		return Fail[[]CategoryDTO]("Failed to retrieve categories."), err
	}
	if dtos == nil {
		dtos = []CategoryDTO{}
	}
	return OK(dtos, "Categories retrieved successfully."), nil
}

func (s *CategoryService) GetByID(ctx context.Context, id int) (Result[*CategoryDTO], error) {
	c, err := s.categories.FindByID(id)
	if err != nil {
		return Fail[*CategoryDTO]("Failed to retrieve category."), err
	}
	if c == nil {
		return Fail[*CategoryDTO]("Category not found."), nil
	}
	return OK(toCategoryDTO(c), "Category retrieved successfully."), nil
}

func (s *CategoryService) Create(ctx context.Context, name string) (Result[*CategoryDTO], error) {
	c := &domain.Category{Name: name}
	if err := s.categories.Create(c); err != nil {
		return Fail[*CategoryDTO]("Failed to add category."), err
	}
	s.invalidate(ctx, categoryListKey)
	return OK(toCategoryDTO(c), "Category added successfully."), nil
}

func (s *CategoryService) Update(ctx context.Context, id int, name string) (Result[bool], error) {
	c, err := s.categories.FindByID(id)
	if err != nil {
		return Fail[bool]("Failed to update category."), err
	}
	if c == nil {
		return Fail[bool]("Category not found."), nil
	}
	c.Name = name
	if err := s.categories.Update(c); err != nil {
		return Fail[bool]("Failed to update category."), err
	}
	// Book list carries derived category names, so both keys go.
	s.invalidate(ctx, categoryListKey, bookListKey)
	return OK(true, "Category updated successfully."), nil
}

func (s *CategoryService) Delete(ctx context.Context, id int) (Result[bool], error) {
	c, err := s.categories.FindByID(id)
	if err != nil {
		return Fail[bool]("Failed to delete category."), err
	}
	if c == nil {
		return Fail[bool]("Category not found."), nil
	}
	if err := s.categories.Delete(id); err != nil {
		return Fail[bool]("Failed to delete category."), err
	}
	s.invalidate(ctx, categoryListKey, bookListKey)
	return OK(true, "Category deleted successfully."), nil
}

func (s *CategoryService) invalidate(ctx context.Context, keys ...string) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, keys...)
	}
}
