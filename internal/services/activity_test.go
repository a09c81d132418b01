package services

import (
	"testing"
	"time"

	"dameningen/internal/db"
	"dameningen/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUserActivityCombinesPostsAndLikes(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "user-1", "ダメ子")
	other := createTestUser(t, "user-2", "他人")

	now := time.Now()
	// 同じ日に投稿 1 回といいね 2 回
	createTestEpisode(t, "ep-mine", user.ID, now)
	createTestEpisode(t, "ep-other-1", other.ID, now.Add(-48*time.Hour))
	createTestEpisode(t, "ep-other-2", other.ID, now.Add(-48*time.Hour))

	require.NoError(t, db.DB.Create(&models.Like{
		UserID: user.ID, EpisodeID: "ep-other-1", CreatedAt: now,
	}).Error)
	require.NoError(t, db.DB.Create(&models.Like{
		UserID: user.ID, EpisodeID: "ep-other-2", CreatedAt: now,
	}).Error)

	activities, err := GetUserActivity(user.ID, 365)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, now.Local().Format("2006-01-02"), activities[0].Date)
	assert.Equal(t, 3, activities[0].Count)
}

func TestGetUserActivityExcludesOutsideWindow(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "user-1", "ダメ子")

	now := time.Now()
	createTestEpisode(t, "ep-recent", user.ID, now.Add(-24*time.Hour))
	createTestEpisode(t, "ep-ancient", user.ID, now.Add(-400*24*time.Hour))

	activities, err := GetUserActivity(user.ID, 365)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, now.Add(-24*time.Hour).Local().Format("2006-01-02"), activities[0].Date)
}

func TestGetUserActivityIgnoresOtherUsers(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "user-1", "ダメ子")
	other := createTestUser(t, "user-2", "他人")

	createTestEpisode(t, "ep-other", other.ID, time.Now())

	activities, err := GetUserActivity(user.ID, 365)
	require.NoError(t, err)
	assert.Empty(t, activities)
}

func TestGetUserActivitySortedAscending(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "user-1", "ダメ子")

	now := time.Now()
	createTestEpisode(t, "ep-1", user.ID, now)
	createTestEpisode(t, "ep-2", user.ID, now.Add(-5*24*time.Hour))
	createTestEpisode(t, "ep-3", user.ID, now.Add(-10*24*time.Hour))

	activities, err := GetUserActivity(user.ID, 365)
	require.NoError(t, err)
	require.Len(t, activities, 3)
	for i := 1; i < len(activities); i++ {
		assert.True(t, activities[i-1].Date < activities[i].Date)
	}
}
