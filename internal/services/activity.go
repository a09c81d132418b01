package services

import (
	"sort"
	"time"

	"dameningen/internal/db"
	"dameningen/internal/models"
)

// DaysToShow 活动日历默认窗口
const DaysToShow = 365

// DailyActivity 单日活动量（发帖 + 点赞合计）
type DailyActivity struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

// GetUserActivity 统计用户在窗口内每天的发帖数和点赞数之和。
// 窗口起点是 (今天 - (windowDays-1)) 的本地日零点。
// 没有活动的日期不输出，按日期升序返回。
func GetUserActivity(userID string, windowDays int) ([]DailyActivity, error) {
	if windowDays <= 0 {
		windowDays = DaysToShow
	}

	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, -(windowDays - 1))

	var episodeTimes []time.Time
	if err := db.DB.Model(&models.Episode{}).
		Where("user_id = ? AND created_at >= ?", userID, start).
		Pluck("created_at", &episodeTimes).Error; err != nil {
		return nil, err
	}

	var likeTimes []time.Time
	if err := db.DB.Model(&models.Like{}).
		Where("user_id = ? AND created_at >= ?", userID, start).
		Pluck("created_at", &likeTimes).Error; err != nil {
		return nil, err
	}

	// 两类事件合并进同一个日桶
	buckets := make(map[string]int)
	for _, t := range episodeTimes {
		buckets[t.Local().Format("2006-01-02")]++
	}
	for _, t := range likeTimes {
		buckets[t.Local().Format("2006-01-02")]++
	}

	activities := make([]DailyActivity, 0, len(buckets))
	for date, count := range buckets {
		activities = append(activities, DailyActivity{Date: date, Count: count})
	}
	sort.Slice(activities, func(i, j int) bool {
		return activities[i].Date < activities[j].Date
	})

	return activities, nil
}
