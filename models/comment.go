package models

import (
	"time"

	"gorm.io/gorm"
)

type Comment struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	Content   string         `json:"content" gorm:"size:500;not null"`
	PostID    uint           `json:"post_id" gorm:"not null;index"`
	AuthorID  uint           `json:"author_id" gorm:"not null"`
	Author    User           `json:"author" gorm:"foreignKey:AuthorID"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
