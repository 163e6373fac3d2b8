package utils

import (
	"slices"
	"testing"
)

// TestWrapText 测试文本换行功能
func TestWrapText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth float64
		expected []string
	}{
		{
			name:     "短文本不换行",
			input:    "Le Codex",
			maxWidth: 600,
			expected: []string{"Le Codex"},
		},
		{
			name:     "在空格处断行",
			input:    "Colles, restaurations et humidite",
			maxWidth: 120, // 20 列
			expected: []string{"Colles, restaurations", "et humidite"},
		},
		{
			name:     "超长单词强制断行",
			input:    "abcdefghij",
			maxWidth: 24, // 4 列
			expected: []string{"abcd", "efgh", "ij"},
		},
		{
			name:     "多字节字符按字符计数",
			input:    "écriture spéculaire",
			maxWidth: 60, // 10 列
			expected: []string{"écriture", "spéculaire"},
		},
		{
			name:     "保留换行符",
			input:    "ligne un\nligne deux",
			maxWidth: 600,
			expected: []string{"ligne un", "ligne deux"},
		},
		{
			name:     "空文本",
			input:    "",
			maxWidth: 100,
			expected: []string{""},
		},
		{
			name:     "宽度无效时不换行",
			input:    "texte quelconque",
			maxWidth: 0,
			expected: []string{"texte quelconque"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := WrapText(tt.input, tt.maxWidth, 6)
			if !slices.Equal(lines, tt.expected) {
				t.Errorf("期望 %q，实际 %q", tt.expected, lines)
			}
		})
	}
}
