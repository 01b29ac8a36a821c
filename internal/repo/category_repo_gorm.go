package repo

import (
	"errors"

	"gorm.io/gorm"

	"bookstore-api/internal/domain"
)

type CategoryRepo struct{ db *gorm.DB }

func NewCategoryRepo(db *gorm.DB) *CategoryRepo { return &CategoryRepo{db: db} }

func (r *CategoryRepo) List() ([]domain.Category, error) {
	var cats []domain.Category
	if err := r.db.Order("id").Find(&cats).Error; err != nil {
		return nil, err
	}
	return cats, nil
}

func (r *CategoryRepo) FindByID(id int) (*domain.Category, error) {
	var c domain.Category
	err := r.db.First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepo) Create(c *domain.Category) error { return r.db.Create(c).Error }

func (r *CategoryRepo) Update(c *domain.Category) error { return r.db.Save(c).Error }

// Delete cascades: the category and every book referencing it go in
// one transaction, so a failure leaves both tables untouched.
func (r *CategoryRepo) Delete(id int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&domain.Book{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&domain.Category{}).Error
	})
}
