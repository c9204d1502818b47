package portfolio

// Document 表示存储在站点 Data(JSONB) 中的完整作品集文档。
// 渲染核心只读取该结构，不会修改它。
type Document struct {
	Name       string `json:"name"`
	Subheading string `json:"subheading,omitempty"`
	BadgeText  string `json:"badgeText,omitempty"`
	Photo      string `json:"photo"`
	Bio        string `json:"bio"`

	Education      string `json:"education"`
	EducationImage string `json:"educationImage,omitempty"`

	// Skills 与 SoftSkills 均为逗号分隔的自由文本，渲染时才拆分。
	Skills     string `json:"skills"`
	SoftSkills string `json:"softSkills"`

	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	Email    string `json:"email,omitempty"`
	WhatsApp string `json:"whatsapp,omitempty"`
	Resume   string `json:"resume,omitempty"`

	Projects       []Project       `json:"projects"`
	Achievements   []Achievement   `json:"achievements"`
	Experiences    []Experience    `json:"experiences"`
	Certifications []Certification `json:"certifications"`
	Gallery        []GalleryItem   `json:"gallery"`
	CustomLinks    []Link          `json:"customLinks"`

	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	X         string `json:"x,omitempty"`

	VSLURL        string `json:"vslUrl,omitempty"`
	VSLAutoplay   bool   `json:"vslAutoplay,omitempty"`
	VSLShowPlayer bool   `json:"vslShowPlayer,omitempty"`

	SectionOrder  []SectionID          `json:"sectionOrder"`
	SectionTitles map[SectionID]string `json:"sectionTitles,omitempty"`
	NavbarEnabled bool                 `json:"navbarEnabled"`

	Settings Settings `json:"settings"`
}

// Link 是带展示文案的外部链接，label 同时用于选择图标。
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Project 表示一条作品记录。
type Project struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image,omitempty"`
	Links       []Link   `json:"links,omitempty"`
	TechStack   []string `json:"techStack,omitempty"`
}

// Achievement 表示一条成就记录。
type Achievement struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
	Links       []Link `json:"links,omitempty"`
}

// Experience 表示一段工作经历。
type Experience struct {
	Role        string `json:"role"`
	Company     string `json:"company"`
	Period      string `json:"period"`
	Description string `json:"description"`
}

// Certification 表示一条证书记录。
type Certification struct {
	Title       string `json:"title"`
	Issuer      string `json:"issuer"`
	Date        string `json:"date"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	Link        string `json:"link,omitempty"`
}

// GalleryItem 表示画廊中的一张图片。
type GalleryItem struct {
	Image   string `json:"image"`
	Caption string `json:"caption,omitempty"`
}

// SectionColor 是单个区块的颜色覆盖，缺省字段回退到全局设置。
type SectionColor struct {
	Background string `json:"bg,omitempty"`
	Text       string `json:"text,omitempty"`
	Heading    string `json:"heading,omitempty"`
}

// Settings 描述整站的视觉配置。
type Settings struct {
	Animation       Animation               `json:"animation"`
	Theme           Theme                   `json:"theme"`
	PrimaryColor    string                  `json:"primaryColor"`
	BackgroundColor string                  `json:"backgroundColor"`
	TextColor       string                  `json:"textColor"`
	HeadingColor    string                  `json:"headingColor"`
	UIStyle         UIStyle                 `json:"uiStyle"`
	HeadingFont     Font                    `json:"headingFont"`
	BodyFont        Font                    `json:"bodyFont"`
	SectionColors   map[string]SectionColor `json:"sectionColors,omitempty"`
	BentoView       bool                    `json:"bentoView,omitempty"`
}

// SectionID 标识页面中的一个内容区块，取值为固定枚举。
type SectionID string

const (
	SectionVSL            SectionID = "vsl"
	SectionAbout          SectionID = "about"
	SectionSkills         SectionID = "skills"
	SectionExperience     SectionID = "experience"
	SectionProjects       SectionID = "projects"
	SectionAchievements   SectionID = "achievements"
	SectionCertifications SectionID = "certifications"
	SectionGallery        SectionID = "gallery"
	SectionResume         SectionID = "resume"
	SectionContact        SectionID = "contact"
	// SectionEducation 合法但不在默认顺序里，只有用户显式添加才会出现。
	SectionEducation SectionID = "education"
)

// Animation 是入场动画枚举。
type Animation string

const (
	AnimationNone    Animation = "none"
	AnimationFade    Animation = "fade"
	AnimationSlideUp Animation = "slide-up"
	AnimationScaleIn Animation = "scale-in"
	AnimationBlurIn  Animation = "blur-in"
	AnimationBounce  Animation = "bounce"
	AnimationSkewIn  Animation = "skew-in"
	AnimationFlip    Animation = "flip"
)

// Theme 是主题枚举。
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeCustom Theme = "custom"
)

// UIStyle 是视觉风格（vibe）枚举。
type UIStyle string

const (
	StyleGlass     UIStyle = "Glassmorphism"
	StyleMinimal   UIStyle = "Minimalist"
	StyleNeobrutal UIStyle = "Neobrutalism"
	StyleSwiss     UIStyle = "Swiss Grid"
	StyleNeon      UIStyle = "Neon Cyber"
	StyleEditorial UIStyle = "Editorial Serif"
)

// Font 是可选字体枚举。
type Font string

const (
	FontJakarta    Font = "Plus Jakarta Sans"
	FontSpace      Font = "Space Grotesk"
	FontPlayfair   Font = "Playfair Display"
	FontInter      Font = "Inter"
	FontOutfit     Font = "Outfit"
	FontMontserrat Font = "Montserrat"
	FontSyne       Font = "Syne"
	FontDMSans     Font = "DM Sans"
)
