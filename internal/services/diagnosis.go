package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"dameningen/internal/logger"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const (
	diagnosisModelName = "gemini-2.0-flash-exp"

	diagnosisPromptTemplate = `
あなたはユーモアのある診断士です。以下のエピソードを読んで、その人の「ダメ人間度」を0%%から100%%で診断してください。
診断は楽しく、ポジティブなトーンで行ってください。

エピソード: %s

以下の形式で回答してください：
- ダメ人間度: XX%%
- 診断結果: （2-3文で、ユーモアを交えた診断コメント）
- アドバイス: （1-2文で、前向きなアドバイス）
`
)

// ErrNoAPIKey GEMINI_API_KEY 未配置
var ErrNoAPIKey = errors.New("GEMINI_API_KEY is not set")

// DiagnosisService 调用 Gemini 生成"ダメ人間診断"。对第三方 API 的直接透传。
type DiagnosisService struct {
	client *genai.Client
}

var (
	diagnosisService     *DiagnosisService
	diagnosisServiceOnce sync.Once
)

// GetDiagnosisService 获取单例诊断服务。没有 API Key 时 client 为 nil，
// Diagnose 调用会返回 ErrNoAPIKey。
func GetDiagnosisService() *DiagnosisService {
	diagnosisServiceOnce.Do(func() {
		diagnosisService = &DiagnosisService{}

		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			logger.Log.Warn().Msg("GEMINI_API_KEY not set, diagnosis feature disabled")
			return
		}

		client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
		if err != nil {
			logger.Log.Error().Err(err).Msg("Failed to create GenAI client")
			return
		}
		diagnosisService.client = client
	})
	return diagnosisService
}

// Diagnose 生成诊断文本
func (s *DiagnosisService) Diagnose(ctx context.Context, episode string) (string, error) {
	if s.client == nil {
		return "", ErrNoAPIKey
	}

	model := s.client.GenerativeModel(diagnosisModelName)
	prompt := BuildDiagnosisPrompt(episode)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate content failed: %w", err)
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("empty response from gemini")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	if sb.Len() == 0 {
		return "", errors.New("gemini response contained no text")
	}

	return sb.String(), nil
}

// BuildDiagnosisPrompt 组装诊断 prompt
func BuildDiagnosisPrompt(episode string) string {
	return fmt.Sprintf(diagnosisPromptTemplate, episode)
}
