package portfolio

import (
	"regexp"
	"strings"
)

// youtubeIDPattern 容忍各种常见 YouTube 链接形态，取第二个捕获组作为视频 ID。
var youtubeIDPattern = regexp.MustCompile(`(youtu\.be/|/v/|/u/\w/|/embed/|[?&]v=)([^#&?]*)`)

// ExtractVideoID 从一段 YouTube 链接里提取 11 位视频 ID。
// 无法识别或长度不等于 11 时返回空串。
func ExtractVideoID(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	m := youtubeIDPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return ""
	}
	id := m[2]
	if len(id) != 11 {
		return ""
	}
	return id
}

// SplitSkills 把逗号分隔的技能串拆成词条，去掉首尾空白并丢弃空项。
func SplitSkills(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// SanitizeWhatsApp 只保留号码中的数字，供 wa.me 链接使用。
func SanitizeWhatsApp(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
