package models

import (
	"mime/multipart"
	"time"

	"gorm.io/gorm"
)

type Article struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Title       string         `json:"title" gorm:"size:255;not null"`
	Description string         `json:"description" gorm:"type:text;not null"`
	Image       string         `json:"image" gorm:"not null"`
	UserID      uint           `json:"user_id" gorm:"not null"`
	Author      *User          `json:"author,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// ArticleRequest covers both create and update; updates replace all four
// fields, the image is re-uploaded every time. user_id existence and the
// image content check happen at the controller layer.
type ArticleRequest struct {
	Title       string                `form:"title" binding:"required,max=255"`
	Description string                `form:"description" binding:"required"`
	UserID      uint                  `form:"user_id" binding:"required"`
	Image       *multipart.FileHeader `form:"image" binding:"required"`
}
