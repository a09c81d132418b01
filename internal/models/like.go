package models

import (
	"time"
)

// Like 点赞记录，一个用户对一条 Episode 最多一次。
// 复合唯一键 idx_like_pair = (user_id, episode_id)
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"size:36;not null;index;index:idx_like_pair,unique" json:"user_id"`
	EpisodeID string    `gorm:"size:36;not null;index;index:idx_like_pair,unique" json:"episode_id"`
	Episode   Episode   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
