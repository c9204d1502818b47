package portfolio

// DefaultSectionOrder 是新站点的默认区块顺序。
// 归一化时缺失的区块按此顺序补齐。
var DefaultSectionOrder = []SectionID{
	SectionVSL,
	SectionAbout,
	SectionSkills,
	SectionExperience,
	SectionProjects,
	SectionAchievements,
	SectionCertifications,
	SectionGallery,
	SectionResume,
	SectionContact,
}

// Default 返回一份全默认值的种子文档，供新建站点使用。
func Default() Document {
	return Document{
		BadgeText:     "Available for Hire",
		NavbarEnabled: true,
		SectionOrder:  append([]SectionID(nil), DefaultSectionOrder...),
		SectionTitles: map[SectionID]string{},
		VSLShowPlayer: true,
		Settings: Settings{
			Animation:       AnimationSlideUp,
			Theme:           ThemeLight,
			PrimaryColor:    "#6366f1",
			BackgroundColor: "#ffffff",
			TextColor:       "#475569",
			HeadingColor:    "#0f172a",
			UIStyle:         StyleGlass,
			HeadingFont:     FontJakarta,
			BodyFont:        FontInter,
			SectionColors:   map[string]SectionColor{},
			BentoView:       true,
		},
	}
}

// DefaultSectionTitle 返回区块的内置标题，用户未覆盖时使用。
func DefaultSectionTitle(id SectionID) string {
	switch id {
	case SectionVSL:
		return "Video Introduction"
	case SectionAbout:
		return "About"
	case SectionSkills:
		return "Toolkit"
	case SectionExperience:
		return "Experience"
	case SectionProjects:
		return "Selected Works"
	case SectionAchievements:
		return "Achievements"
	case SectionCertifications:
		return "Certifications"
	case SectionGallery:
		return "Gallery"
	case SectionResume:
		return "Resume"
	case SectionContact:
		return "Contact"
	case SectionEducation:
		return "Education"
	default:
		return string(id)
	}
}

// SectionTitle 返回区块的显示标题，优先取用户覆盖值。
func (d *Document) SectionTitle(id SectionID) string {
	if t, ok := d.SectionTitles[id]; ok && t != "" {
		return t
	}
	return DefaultSectionTitle(id)
}
