package config

import "testing"

// TestSectionHeight 测试章节高度计算
func TestSectionHeight(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		cardCount int
		want      float64
	}{
		{"首屏占一个视口", SectionHero, 3, 800},
		{"遗产章节按卡片数", SectionHeritage, 3, 2400},
		{"遗产章节至少一个视口", SectionHeritage, 0, 800},
		{"统计章节半个视口", SectionStats, 3, 400},
		{"未知章节", "unknown", 3, 800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SectionHeight(tt.id, 800, tt.cardCount)
			if got != tt.want {
				t.Errorf("SectionHeight(%q) = %v, 期望 %v", tt.id, got, tt.want)
			}
		})
	}
}

// TestSectionOrder 测试章节顺序以首屏开始且无重复
func TestSectionOrder(t *testing.T) {
	if SectionOrder[0] != SectionHero {
		t.Errorf("first section = %q, 期望 %q", SectionOrder[0], SectionHero)
	}
	seen := make(map[string]bool)
	for _, id := range SectionOrder {
		if seen[id] {
			t.Errorf("duplicate section %q", id)
		}
		seen[id] = true
	}
}
