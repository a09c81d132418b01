package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildDiagnosisPrompt(t *testing.T) {
	prompt := BuildDiagnosisPrompt("二度寝して会議に遅刻した")

	assert.Contains(t, prompt, "二度寝して会議に遅刻した")
	assert.Contains(t, prompt, "ダメ人間度")
	assert.Contains(t, prompt, "0%から100%")
	assert.Contains(t, prompt, "アドバイス")
}
