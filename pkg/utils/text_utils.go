package utils

import (
	"strings"
	"unicode/utf8"
)

// WrapText 将文本按指定宽度自动换行（等宽字体）
// 参数:
//   - textStr: 要换行的文本
//   - maxWidth: 最大宽度（像素）
//   - glyphWidth: 单个字符宽度（像素）
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
//
// 换行规则:
//   - 优先在空格处断行
//   - 如果单词太长超过最大宽度，强制断行
//   - 保留原文中的换行符
func WrapText(textStr string, maxWidth, glyphWidth float64) []string {
	if textStr == "" || maxWidth <= 0 || glyphWidth <= 0 {
		return []string{textStr}
	}
	maxCols := max(1, int(maxWidth/glyphWidth))

	var lines []string
	for _, paragraph := range strings.Split(textStr, "\n") {
		lines = append(lines, wrapParagraph(paragraph, maxCols)...)
	}
	return lines
}

// wrapParagraph 对不含换行符的一段文本断行
func wrapParagraph(paragraph string, maxCols int) []string {
	words := strings.Fields(paragraph)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var current strings.Builder
	currentCols := 0

	for _, word := range words {
		wordCols := utf8.RuneCountInString(word)

		// 当前行放不下，先结束当前行
		if currentCols > 0 && currentCols+1+wordCols > maxCols {
			lines = append(lines, current.String())
			current.Reset()
			currentCols = 0
		}

		// 单词本身超宽，强制断开
		for wordCols > maxCols {
			runes := []rune(word)
			lines = append(lines, string(runes[:maxCols]))
			word = string(runes[maxCols:])
			wordCols -= maxCols
		}
		if wordCols == 0 {
			continue
		}

		if currentCols > 0 {
			current.WriteByte(' ')
			currentCols++
		}
		current.WriteString(word)
		currentCols += wordCols
	}

	if currentCols > 0 {
		lines = append(lines, current.String())
	}
	return lines
}
