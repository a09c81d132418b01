package models

import (
	"time"
)

// Follow 关注关系 (follower 关注 following)。
// 复合唯一键 idx_follow_pair 避免重复关注；自己关注自己在应用层拦截。
type Follow struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FollowerID  string    `gorm:"size:36;not null;index;index:idx_follow_pair,unique" json:"follower_id"`
	FollowingID string    `gorm:"size:36;not null;index:idx_follow_pair,unique" json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`
}
