package models

import (
	"time"

	"gorm.io/gorm"
)

type PostStatus string

const (
	StatusDraft     PostStatus = "draft"
	StatusPublished PostStatus = "published"
)

const DefaultCategory = "Uncategorized"

type Post struct {
	ID            uint           `json:"id" gorm:"primarykey"`
	Title         string         `json:"title" gorm:"size:100;not null"`
	Slug          string         `json:"slug" gorm:"uniqueIndex;not null"`
	Content       string         `json:"content" gorm:"type:text;not null"`
	Excerpt       string         `json:"excerpt" gorm:"size:200"`
	AuthorID      uint           `json:"author_id" gorm:"not null"`
	Author        User           `json:"author" gorm:"foreignKey:AuthorID"`
	Category      string         `json:"category" gorm:"default:'Uncategorized'"`
	Tags          []string       `json:"tags" gorm:"serializer:json"`
	FeaturedImage string         `json:"featured_image" gorm:"default:'no-photo.jpg'"`
	Status        PostStatus     `json:"status" gorm:"default:'draft'"`
	CommentCount  int            `json:"comment_count" gorm:"not null;default:0"`
	Likes         []uint         `json:"likes" gorm:"-"`
	Comments      []Comment      `json:"comments,omitempty" gorm:"foreignKey:PostID"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}

// PostLike rows carry the many-to-many like relation. The composite
// primary key doubles as the unique constraint that keeps one user from
// liking the same post twice.
type PostLike struct {
	PostID    uint      `json:"post_id" gorm:"primarykey;autoIncrement:false"`
	UserID    uint      `json:"user_id" gorm:"primarykey;autoIncrement:false"`
	CreatedAt time.Time `json:"created_at"`
}
