package repo

import (
	"errors"

	"gorm.io/gorm"

	"bookstore-api/internal/domain"
)

type BookRepo struct{ db *gorm.DB }

func NewBookRepo(db *gorm.DB) *BookRepo { return &BookRepo{db: db} }

func (r *BookRepo) List() ([]domain.Book, error) {
	var books []domain.Book
	if err := r.db.Preload("Category").Order("id").Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

func (r *BookRepo) FindByID(id int) (*domain.Book, error) {
	var b domain.Book
	err := r.db.Preload("Category").First(&b, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookRepo) Create(b *domain.Book) error { return r.db.Create(b).Error }

func (r *BookRepo) Update(b *domain.Book) error {
	return r.db.Omit("Category").Save(b).Error
}

func (r *BookRepo) Delete(id int) error {
	return r.db.Where("id = ?", id).Delete(&domain.Book{}).Error
}
