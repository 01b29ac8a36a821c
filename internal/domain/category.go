package domain

type Category struct {
	ID    int    `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:191;not null" json:"name"`
	Books []Book `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (Category) TableName() string { return "categories" }

type CategoryRepository interface {
	List() ([]Category, error)
	FindByID(id int) (*Category, error)
	Create(c *Category) error
	Update(c *Category) error
	// Delete removes the category and every book referencing it in a
	// single transaction.
	Delete(id int) error
}
