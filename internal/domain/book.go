package domain

type Book struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:191;not null" json:"name"`
	Description string    `gorm:"not null" json:"description"`
	Price       float64   `gorm:"type:decimal(18,2)" json:"price"`
	CategoryID  int       `gorm:"index;not null" json:"categoryId"`
	Category    *Category `json:"-"`
}

func (Book) TableName() string { return "books" }

type BookRepository interface {
	// List and FindByID load the owning category alongside the book.
	List() ([]Book, error)
	FindByID(id int) (*Book, error)
	Create(b *Book) error
	Update(b *Book) error
	Delete(id int) error
}
