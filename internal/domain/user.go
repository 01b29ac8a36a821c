package domain

import "time"

type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	UserName     string    `gorm:"size:64;not null" json:"userName"`
	Email        string    `gorm:"uniqueIndex;size:191;not null" json:"email"`
	PasswordHash string    `gorm:"size:191;not null" json:"-"`
	Role         string    `gorm:"size:16;not null;default:User" json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (User) TableName() string { return "users" }

type UserRepository interface {
	Create(u *User) error
	FindByID(id string) (*User, error)
	// FindByEmail matches case-insensitively.
	FindByEmail(email string) (*User, error)
	FindByUserName(name string) (*User, error)
}
