package models

import (
	"time"
)

type Episode struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"size:36;not null;index" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Content   string    `gorm:"size:200;not null" json:"content"`
	Category  string    `gorm:"size:30" json:"category"`
	CreatedAt time.Time `json:"created_at"`

	// 非数据库字段，查询时填充
	LikeCount int  `gorm:"-" json:"likes"`
	LikedByMe bool `gorm:"-" json:"likedByMe"`
}
