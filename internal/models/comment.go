package models

import (
	"time"
)

type Comment struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	EpisodeID string    `gorm:"size:36;not null;index" json:"episode_id"`
	Episode   Episode   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	UserID    string    `gorm:"size:36;not null;index" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Content   string    `gorm:"size:500;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
