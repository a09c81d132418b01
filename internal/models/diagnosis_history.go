package models

import (
	"time"
)

// DiagnosisHistory AI 诊断记录，只追加和按时间取最近 N 条。
type DiagnosisHistory struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"size:36;not null;index" json:"user_id"`
	Episode   string    `gorm:"type:text;not null" json:"episode"`
	Diagnosis string    `gorm:"type:text;not null" json:"diagnosis"`
	CreatedAt time.Time `json:"created_at"`
}
