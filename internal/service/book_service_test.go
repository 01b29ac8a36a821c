package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore-api/internal/domain"
)

func TestBookService_List_EmptyIsNotAnError(t *testing.T) {
	env, cleanup := setupServices(t)
	defer cleanup()

	result, err := env.books.List(context.Background())
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "Books retrieved successfully.", result.Message)
	assert.NotNil(t, result.Data)
	assert.Empty(t, result.Data)
}

func TestBookService_List_ResolvesCategoryNames(t *testing.T) {
	env, cleanup := setupServices(t)
	defer cleanup()
	ctx := context.Background()

	fiction, err := env.categories.Create(ctx, "Fiction")
	require.NoError(t, err)
	science, err := env.categories.Create(ctx, "Science")
	require.NoError(t, err)

	_, err = env.books.Create(ctx, BookDTO{Name: "A", Description: "a", Price: 10, CategoryID: fiction.Data.ID})
	require.NoError(t, err)
	_, err = env.books.Create(ctx, BookDTO{Name: "B", Description: "b", Price: 15, CategoryID: science.Data.ID})
	require.NoError(t, err)

	result, err := env.books.List(ctx)
	require.NoError(t, err)
	require.True(t, result.Success)
	require.Len(t, result.Data, 2)
	assert.Equal(t, "Fiction", result.Data[0].CategoryName)
	assert.Equal(t, "Science", result.Data[1].CategoryName)
}

func TestBookService_GetByID_NotFound(t *testing.T) {
	env, cleanup := setupServices(t)
	defer cleanup()

	result, err := env.books.GetByID(context.Background(), 42)
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Book not found.", result.Message)
	assert.Nil(t, result.Data)
}

func TestBookService_Create_PopulatesCategoryName(t *testing.T) {
	env, cleanup := setupServices(t)
	defer cleanup()
	ctx := context.Background()

	cat, err := env.categories.Create(ctx, "Sci-Fi")
	require.NoError(t, err)

	result, err := env.books.Create(ctx, BookDTO{
		Name: "Dune", Description: "Desert planet.", Price: 12.99, CategoryID: cat.Data.ID,
	})
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, "Book added successfully.", result.Message)
	assert.NotZero(t, result.Data.ID)
	assert.Equal(t, "Sci-Fi", result.Data.CategoryName)
	assert.Equal(t, 12.99, result.Data.Price)
}

func TestBookService_Create_MissingCategoryPersistsNothing(t *testing.T) {
	env, cleanup := setupServices(t)
	defer cleanup()
	ctx := context.Background()

	result, err := env.books.Create(ctx, BookDTO{
		Name: "Ghost", Description: "d", Price: 1, CategoryID: 999,
	})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Category does not exist.", result.Message)
	assert.Nil(t, result.Data)

	var count int64
	require.NoError(t, env.db.Model(&domain.Book{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestBookService_Update(t *testing.T) {
	env, cleanup := setupServices(t)
	defer cleanup()
	ctx := context.Background()

	c1, err := env.categories.Create(ctx, "One")
	require.NoError(t, err)
	c2, err := env.categories.Create(ctx, "Two")
	require.NoError(t, err)

	created, err := env.books.Create(ctx, BookDTO{Name: "Old", Description: "old", Price: 1, CategoryID: c1.Data.ID})
	require.NoError(t, err)

	result, err := env.books.Update(ctx, BookDTO{
		ID: created.Data.ID, Name: "New", Description: "new", Price: 2.5, CategoryID: c2.Data.ID,
	})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.True(t, result.Data)
	assert.Equal(t, "Book updated successfully.", result.Message)

	got, err := env.books.GetByID(ctx, created.Data.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", got.Data.Name)
	assert.Equal(t, c2.Data.ID, got.Data.CategoryID)
	assert.Equal(t, "Two", got.Data.CategoryName)
}

func TestBookService_Update_NotFound(t *testing.T) {
	env, cleanup := setupServices(t)
	defer cleanup()

	result, err := env.books.Update(context.Background(), BookDTO{ID: 42, Name: "X", Description: "x", Price: 1, CategoryID: 1})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Book not found.", result.Message)
}

func TestBookService_Update_MissingCategoryLeavesRecordUntouched(t *testing.T) {
	env, cleanup := setupServices(t)
	defer cleanup()
	ctx := context.Background()

	cat, err := env.categories.Create(ctx, "Real")
	require.NoError(t, err)
	created, err := env.books.Create(ctx, BookDTO{Name: "Original", Description: "orig", Price: 3, CategoryID: cat.Data.ID})
	require.NoError(t, err)

	result, err := env.books.Update(ctx, BookDTO{
		ID: created.Data.ID, Name: "Changed", Description: "changed", Price: 99, CategoryID: 999,
	})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Category does not exist.", result.Message)

	got, err := env.books.GetByID(ctx, created.Data.ID)
	require.NoError(t, err)
	assert.Equal(t, "Original", got.Data.Name)
	assert.Equal(t, "orig", got.Data.Description)
	assert.Equal(t, 3.0, got.Data.Price)
	assert.Equal(t, cat.Data.ID, got.Data.CategoryID)
}

func TestBookService_Delete(t *testing.T) {
	env, cleanup := setupServices(t)
	defer cleanup()
	ctx := context.Background()

	cat, err := env.categories.Create(ctx, "C")
	require.NoError(t, err)
	created, err := env.books.Create(ctx, BookDTO{Name: "B", Description: "b", Price: 1, CategoryID: cat.Data.ID})
	require.NoError(t, err)

	result, err := env.books.Delete(ctx, created.Data.ID)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "Book deleted successfully.", result.Message)

	// Category survives a book delete.
	c, err := env.categories.GetByID(ctx, cat.Data.ID)
	require.NoError(t, err)
	assert.True(t, c.Success)
}

func TestBookService_Delete_NotFound(t *testing.T) {
	env, cleanup := setupServices(t)
	defer cleanup()

	result, err := env.books.Delete(context.Background(), 42)
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Book not found.", result.Message)
}
