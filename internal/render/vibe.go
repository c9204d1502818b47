package render

import "folioswift/internal/portfolio"

// Vibe 是一套视觉布局策略的声明式描述。
// 渲染器只消费这些类串，不再针对风格写分支。
type Vibe struct {
	Name portfolio.UIStyle

	Container string
	Card      string
	Header    string
	Badge     string
	Grid      string

	// FlatGrid 表示该风格要求组合器铺成一张 12 列的平面网格
	// （单元格靠边框分隔，不是独立卡片）。目前只有 Swiss Grid。
	FlatGrid bool
	// BentoCapable 表示该风格允许 bento 双列拆分模式。
	BentoCapable bool

	// wide 列出强制占满整行的区块。vsl 在所有风格下都占满整行。
	wide map[portfolio.SectionID]bool
	// narrowSpan / wideSpan 是 FlatGrid 风格下的列宽类。
	narrowSpan string
	wideSpan   string
	fullSpan   string
}

// SpanClass 返回区块在网格中的跨度类。
func (v *Vibe) SpanClass(id portfolio.SectionID) string {
	if v.FlatGrid {
		if id == portfolio.SectionVSL {
			return v.fullSpan
		}
		if v.wide[id] {
			return v.wideSpan
		}
		return v.narrowSpan
	}
	if id == portfolio.SectionVSL || v.wide[id] {
		return v.fullSpan
	}
	return ""
}

var vibeGlass = &Vibe{
	Name:         portfolio.StyleGlass,
	Container:    "max-w-5xl mx-auto p-12 space-y-12",
	Card:         "backdrop-blur-2xl bg-white/30 border border-white/50 shadow-2xl rounded-[64px] p-16",
	Header:       "backdrop-blur-3xl bg-white/40 border border-white/60 shadow-2xl rounded-[80px] p-20 flex flex-col md:flex-row items-center gap-16 mb-12",
	Badge:        "bg-white/40 border border-white/40 px-6 py-2.5 rounded-full font-black text-[11px] uppercase tracking-[0.3em] mb-8 inline-block",
	Grid:         "grid grid-cols-1 md:grid-cols-2 gap-12",
	BentoCapable: true,
	wide:         map[portfolio.SectionID]bool{portfolio.SectionAbout: true},
	fullSpan:     "md:col-span-2",
}

var vibeMinimal = &Vibe{
	Name:      portfolio.StyleMinimal,
	Container: "max-w-4xl mx-auto space-y-32 py-24 px-8",
	Card:      "bg-transparent p-0 border-0 shadow-none",
	Header:    "mb-32 flex flex-col items-start text-left border-b border-black/5 pb-20",
	Badge:     "text-indigo-600 font-black uppercase text-[10px] tracking-widest block mb-8",
	Grid:      "flex flex-col gap-24",
	wide:      map[portfolio.SectionID]bool{},
	fullSpan:  "w-full",
}

var vibeNeobrutal = &Vibe{
	Name:         portfolio.StyleNeobrutal,
	Container:    "max-w-6xl mx-auto p-12 space-y-12",
	Card:         "bg-white border-[4px] border-black shadow-[10px_10px_0_0_rgba(0,0,0,1)] p-12 rounded-none",
	Header:       "bg-white border-[4px] border-black shadow-[15px_15px_0_0_rgba(0,0,0,1)] p-16 rounded-none flex flex-col md:flex-row items-center gap-12 mb-12",
	Badge:        "bg-yellow-400 text-black border-2 border-black px-4 py-1.5 font-black uppercase text-[12px] mb-6 inline-block",
	Grid:         "grid grid-cols-1 md:grid-cols-2 gap-12",
	BentoCapable: true,
	wide: map[portfolio.SectionID]bool{
		portfolio.SectionAbout:      true,
		portfolio.SectionExperience: true,
		portfolio.SectionProjects:   true,
	},
	fullSpan: "md:col-span-2",
}

var vibeSwiss = &Vibe{
	Name:      portfolio.StyleSwiss,
	Container: "max-w-[1400px] mx-auto grid grid-cols-1 md:grid-cols-12 gap-0 border-t border-l border-black/10",
	Card:      "p-16 border-b border-r border-black/10 rounded-none",
	Header:    "md:col-span-12 p-24 border-b border-r border-black/10 flex flex-col md:flex-row items-start gap-12 mb-0",
	Badge:     "bg-black text-white px-3 py-1 font-black uppercase text-[10px] mb-6 inline-block",
	Grid:      "grid grid-cols-1 md:grid-cols-12 md:col-span-12",
	FlatGrid:  true,
	wide: map[portfolio.SectionID]bool{
		portfolio.SectionAbout:      true,
		portfolio.SectionExperience: true,
		portfolio.SectionProjects:   true,
	},
	narrowSpan: "md:col-span-4",
	wideSpan:   "md:col-span-8",
	fullSpan:   "md:col-span-12",
}

var vibeNeon = &Vibe{
	Name:      portfolio.StyleNeon,
	Container: "max-w-5xl mx-auto p-12 space-y-12",
	Card:      "bg-black/80 border border-cyan-400/40 shadow-[0_0_40px_rgba(34,211,238,0.25)] rounded-3xl p-14",
	Header:    "bg-black/90 border border-cyan-400/60 shadow-[0_0_60px_rgba(34,211,238,0.35)] rounded-3xl p-16 flex flex-col md:flex-row items-center gap-14 mb-12",
	Badge:     "border border-cyan-400 text-cyan-300 px-5 py-2 rounded-full font-black text-[10px] uppercase tracking-[0.4em] mb-8 inline-block",
	Grid:      "grid grid-cols-1 md:grid-cols-2 gap-10",
	wide: map[portfolio.SectionID]bool{
		portfolio.SectionAbout:    true,
		portfolio.SectionProjects: true,
	},
	fullSpan: "md:col-span-2",
}

var vibeEditorial = &Vibe{
	Name:      portfolio.StyleEditorial,
	Container: "max-w-3xl mx-auto space-y-28 py-28 px-8",
	Card:      "bg-transparent border-t border-black/20 pt-14 rounded-none",
	Header:    "mb-28 flex flex-col items-center text-center border-b-2 border-black/80 pb-16",
	Badge:     "font-serif italic text-sm tracking-wide mb-6 block",
	Grid:      "flex flex-col gap-20",
	wide:      map[portfolio.SectionID]bool{},
	fullSpan:  "w-full",
}

// ResolveVibe 把风格枚举映射到布局策略，未知取值回退到 Glass。
func ResolveVibe(style portfolio.UIStyle) *Vibe {
	switch style {
	case portfolio.StyleMinimal:
		return vibeMinimal
	case portfolio.StyleNeobrutal:
		return vibeNeobrutal
	case portfolio.StyleSwiss:
		return vibeSwiss
	case portfolio.StyleNeon:
		return vibeNeon
	case portfolio.StyleEditorial:
		return vibeEditorial
	default:
		return vibeGlass
	}
}
