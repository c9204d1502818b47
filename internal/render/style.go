package render

import "folioswift/internal/portfolio"

// SectionStyle 是单个区块解析完成后的样式，所有字段都已填充，
// 下游不再需要实现任何回退逻辑。
type SectionStyle struct {
	Background  string
	Text        string
	Heading     string
	HeadingFont string
	BodyFont    string
}

// ResolveSectionStyle 解析区块样式：sectionColors 里有覆盖项就逐字段取覆盖值，
// 缺省字段回退到全局设置。字体没有区块级覆盖，永远取全局值。
// 这是一个全函数，任何输入都能得到完整结果。
func ResolveSectionStyle(s *portfolio.Settings, id portfolio.SectionID) SectionStyle {
	style := SectionStyle{
		Background:  s.BackgroundColor,
		Text:        s.TextColor,
		Heading:     s.HeadingColor,
		HeadingFont: string(s.HeadingFont),
		BodyFont:    string(s.BodyFont),
	}
	if ov, ok := s.SectionColors[string(id)]; ok {
		if ov.Background != "" {
			style.Background = ov.Background
		}
		if ov.Text != "" {
			style.Text = ov.Text
		}
		if ov.Heading != "" {
			style.Heading = ov.Heading
		}
	}
	return style
}
