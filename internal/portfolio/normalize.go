package portfolio

// validSections 是 sectionOrder 可接受的全部取值。
var validSections = map[SectionID]bool{
	SectionVSL:            true,
	SectionAbout:          true,
	SectionSkills:         true,
	SectionExperience:     true,
	SectionProjects:       true,
	SectionAchievements:   true,
	SectionCertifications: true,
	SectionGallery:        true,
	SectionResume:         true,
	SectionContact:        true,
	SectionEducation:      true,
}

// Normalize 修复文档中的非法或缺失字段，使渲染核心拿到的输入总是完整的。
// sectionOrder 规则：未知区块被丢弃，已识别区块保持用户给定的相对顺序，
// 默认顺序里缺失的区块按默认顺序补到末尾。education 合法但不自动补齐。
// 对已归一化的文档再调用一次不产生任何变化。
func Normalize(doc *Document) {
	seen := map[SectionID]bool{}
	order := make([]SectionID, 0, len(DefaultSectionOrder))
	for _, id := range doc.SectionOrder {
		if !validSections[id] || seen[id] {
			continue
		}
		seen[id] = true
		order = append(order, id)
	}
	for _, id := range DefaultSectionOrder {
		if !seen[id] {
			order = append(order, id)
		}
	}
	doc.SectionOrder = order

	if doc.SectionTitles == nil {
		doc.SectionTitles = map[SectionID]string{}
	}

	def := Default().Settings
	s := &doc.Settings
	if s.Animation == "" {
		s.Animation = def.Animation
	}
	if s.Theme == "" {
		s.Theme = def.Theme
	}
	if s.PrimaryColor == "" {
		s.PrimaryColor = def.PrimaryColor
	}
	if s.BackgroundColor == "" {
		s.BackgroundColor = def.BackgroundColor
	}
	if s.TextColor == "" {
		s.TextColor = def.TextColor
	}
	if s.HeadingColor == "" {
		s.HeadingColor = def.HeadingColor
	}
	if s.UIStyle == "" {
		s.UIStyle = def.UIStyle
	}
	if s.HeadingFont == "" {
		s.HeadingFont = def.HeadingFont
	}
	if s.BodyFont == "" {
		s.BodyFont = def.BodyFont
	}
	if s.SectionColors == nil {
		s.SectionColors = map[string]SectionColor{}
	}
}
