package services

import (
	"sort"
	"time"

	"dameningen/internal/db"
	"dameningen/internal/logger"
	"dameningen/internal/models"
	"dameningen/internal/utils"
)

const (
	// TdnHistoryDays 历史榜单默认窗口
	TdnHistoryDays = 30

	tdnCacheKey = "tdn:current"
	tdnCacheTTL = 60 * time.Second
)

// TdnEpisode 用于展示的 TDN 结果：Episode + 作者名 + 总赞数。
type TdnEpisode struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UserName  string    `json:"user_name"`
	LikeCount int       `json:"likes"`
}

// TdnHistoryEntry 某一天的 TDN
type TdnHistoryEntry struct {
	Date      string     `json:"date"`
	Episode   TdnEpisode `json:"episode"`
	LikeCount int        `json:"likes"`
}

type episodeLikeCount struct {
	EpisodeID string
	Cnt       int
}

// GetTdn 选出"今日のダメ人間"：过去 24 小时获赞最多的 Episode。
// 24 小时内没有任何赞时退回全时段获赞最多的一条；完全没有 Episode 返回 nil。
// 并列时取创建时间最早的那条。结果缓存 60 秒。
// 查询失败只记日志并按"没有数据"处理，不让页面渲染挂掉。
func GetTdn() *TdnEpisode {
	if cached := utils.GetCache().Get(tdnCacheKey); cached != nil {
		if ep, ok := cached.(*TdnEpisode); ok {
			return ep
		}
	}

	since := time.Now().Add(-24 * time.Hour)

	var counts []episodeLikeCount
	err := db.DB.Model(&models.Like{}).
		Select("episode_id, COUNT(*) as cnt").
		Where("created_at >= ?", since).
		Group("episode_id").
		Scan(&counts).Error
	if err != nil {
		logger.Log.Error().Err(err).Msg("Failed to aggregate likes for TDN")
		return nil
	}

	var episode *models.Episode
	if len(counts) > 0 {
		episode = pickTopEpisode(counts)
	} else {
		// フォールバック: 全時間帯でいいねが最も多いエピソード
		episode = pickAllTimeTop()
	}
	if episode == nil {
		return nil
	}

	result := enrichEpisode(episode)
	utils.GetCache().Set(tdnCacheKey, result, tdnCacheTTL)
	return result
}

// GetTdnHistory 返回过去 windowDays 天里每天的 TDN，按日期倒序。
// 没有赞的日子不产生条目。
func GetTdnHistory(windowDays int) []TdnHistoryEntry {
	if windowDays <= 0 {
		windowDays = TdnHistoryDays
	}
	since := time.Now().AddDate(0, 0, -windowDays)

	var likes []models.Like
	if err := db.DB.
		Where("created_at >= ?", since).
		Find(&likes).Error; err != nil {
		logger.Log.Error().Err(err).Msg("Failed to fetch likes for TDN history")
		return []TdnHistoryEntry{}
	}
	if len(likes) == 0 {
		return []TdnHistoryEntry{}
	}

	// 日 -> Episode -> 当天赞数
	dayCounts := make(map[string]map[string]int)
	episodeIDs := make(map[string]bool)
	for _, l := range likes {
		date := l.CreatedAt.Local().Format("2006-01-02")
		if dayCounts[date] == nil {
			dayCounts[date] = make(map[string]int)
		}
		dayCounts[date][l.EpisodeID]++
		episodeIDs[l.EpisodeID] = true
	}

	ids := make([]string, 0, len(episodeIDs))
	for id := range episodeIDs {
		ids = append(ids, id)
	}
	var episodes []models.Episode
	if err := db.DB.Preload("User").Where("id IN ?", ids).Find(&episodes).Error; err != nil {
		logger.Log.Error().Err(err).Msg("Failed to fetch episodes for TDN history")
		return []TdnHistoryEntry{}
	}
	episodeByID := make(map[string]models.Episode, len(episodes))
	for _, e := range episodes {
		episodeByID[e.ID] = e
	}

	entries := make([]TdnHistoryEntry, 0, len(dayCounts))
	for date, perEpisode := range dayCounts {
		var topID string
		topCnt := 0
		for id, cnt := range perEpisode {
			ep, ok := episodeByID[id]
			if !ok {
				// Episode 已被删除，跳过
				continue
			}
			if cnt > topCnt {
				topID, topCnt = id, cnt
				continue
			}
			// 并列取创建时间最早的
			if cnt == topCnt && topID != "" && ep.CreatedAt.Before(episodeByID[topID].CreatedAt) {
				topID = id
			}
		}
		if topID == "" {
			continue
		}
		top := episodeByID[topID]
		entries = append(entries, TdnHistoryEntry{
			Date: date,
			Episode: TdnEpisode{
				ID:        top.ID,
				Content:   top.Content,
				CreatedAt: top.CreatedAt,
				UserName:  top.User.Name,
				LikeCount: topCnt,
			},
			LikeCount: topCnt,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date > entries[j].Date
	})
	return entries
}

// pickTopEpisode 从分组计数里取赞数最高的 Episode，并列取最早创建的。
func pickTopEpisode(counts []episodeLikeCount) *models.Episode {
	maxCnt := 0
	for _, c := range counts {
		if c.Cnt > maxCnt {
			maxCnt = c.Cnt
		}
	}
	var candidates []string
	for _, c := range counts {
		if c.Cnt == maxCnt {
			candidates = append(candidates, c.EpisodeID)
		}
	}

	var episode models.Episode
	err := db.DB.Preload("User").
		Where("id IN ?", candidates).
		Order("created_at ASC").
		First(&episode).Error
	if err != nil {
		logger.Log.Error().Err(err).Msg("Failed to fetch TDN episode")
		return nil
	}
	return &episode
}

// pickAllTimeTop 全时段获赞最多的 Episode。
// 一条赞都没有时取最早发布的 Episode，连 Episode 都没有才返回 nil。
func pickAllTimeTop() *models.Episode {
	var counts []episodeLikeCount
	err := db.DB.Model(&models.Like{}).
		Select("episode_id, COUNT(*) as cnt").
		Group("episode_id").
		Scan(&counts).Error
	if err != nil {
		logger.Log.Error().Err(err).Msg("Failed to aggregate all-time likes for TDN")
		return nil
	}

	if len(counts) > 0 {
		return pickTopEpisode(counts)
	}

	var episode models.Episode
	err = db.DB.Preload("User").Order("created_at ASC").First(&episode).Error
	if err != nil {
		// 没有任何 Episode，今日の TDN は無し
		return nil
	}
	return &episode
}

// enrichEpisode 填充作者名和全时段总赞数
func enrichEpisode(episode *models.Episode) *TdnEpisode {
	var total int64
	if err := db.DB.Model(&models.Like{}).Where("episode_id = ?", episode.ID).Count(&total).Error; err != nil {
		logger.Log.Error().Err(err).Str("episode_id", episode.ID).Msg("Failed to count likes for TDN episode")
	}

	return &TdnEpisode{
		ID:        episode.ID,
		Content:   episode.Content,
		CreatedAt: episode.CreatedAt,
		UserName:  episode.User.Name,
		LikeCount: int(total),
	}
}
