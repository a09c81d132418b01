package services

// ランク定義: Z(最低) → A(最高)，每获得一个赞升一级，25 个赞封顶。
var rankLetters = []string{
	"Z", "Y", "X", "W", "V", "U", "T", "S", "R", "Q", "P", "O", "N",
	"M", "L", "K", "J", "I", "H", "G", "F", "E", "D", "C", "B", "A",
}

// RankInfo 用户等级信息，纯派生值，只算不存。
type RankInfo struct {
	Rank          string `json:"rank"`
	RankIndex     int    `json:"rankIndex"`
	CurrentLikes  int    `json:"currentLikes"`  // 封顶后的多余赞数
	NextRankLikes *int   `json:"nextRankLikes"` // 升下一级还需要的赞数，封顶为 null
	Progress      int    `json:"progress"`
	Color         string `json:"color"`
	Name          string `json:"name"`
	Icon          string `json:"icon"`
}

// CalculateRank 根据用户全部 Episode 收到的总赞数计算等级。
// 负数按 0 处理，任何输入都有合法结果。
func CalculateRank(totalLikes int) RankInfo {
	safeLikes := totalLikes
	if safeLikes < 0 {
		safeLikes = 0
	}

	maxIndex := len(rankLetters) - 1
	rankIndex := safeLikes
	if rankIndex > maxIndex {
		rankIndex = maxIndex
	}

	currentLikes := 0
	if safeLikes > maxIndex {
		currentLikes = safeLikes - maxIndex
	}

	var nextRankLikes *int
	progress := 100
	if rankIndex < maxIndex {
		one := 1
		nextRankLikes = &one
		progress = 0
	}

	name, icon := rankNameAndIcon(rankIndex)

	return RankInfo{
		Rank:          rankLetters[rankIndex],
		RankIndex:     rankIndex,
		CurrentLikes:  currentLikes,
		NextRankLikes: nextRankLikes,
		Progress:      progress,
		Color:         rankColor(rankIndex),
		Name:          name,
		Icon:          icon,
	}
}

// rankColor 按等级区间返回展示颜色
func rankColor(rankIndex int) string {
	switch {
	case rankIndex >= 23:
		return "#FFD700" // A-C: ゴールド
	case rankIndex >= 20:
		return "#C0C0C0" // D-F: シルバー
	case rankIndex >= 15:
		return "#CD7F32" // G-K: ブロンズ
	case rankIndex >= 10:
		return "#4A90E2" // L-P: ブルー
	case rankIndex >= 5:
		return "#50C878" // Q-U: グリーン
	default:
		return "#9E9E9E" // V-Z: グレー
	}
}

// rankNameAndIcon 按等级区间返回称号和图标
func rankNameAndIcon(rankIndex int) (string, string) {
	switch {
	case rankIndex >= 23:
		return "レジェンド", "👑"
	case rankIndex >= 20:
		return "マスター", "⭐"
	case rankIndex >= 15:
		return "エキスパート", "🏆"
	case rankIndex >= 10:
		return "プロ", "💎"
	case rankIndex >= 5:
		return "中級者", "🌟"
	default:
		return "初心者", "🔰"
	}
}
