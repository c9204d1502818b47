package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"folioswift/internal/portfolio"
)

// exportView 是独立导出模板的输入。导出是组合器的降级重实现，
// 只覆盖 header/vsl/about/skills/projects，但对覆盖到的区块必须
// 与在线渲染展示同样的数据和大致布局。
type exportView struct {
	Name       string
	Subheading string
	BadgeText  string
	Photo      string
	Bio        string

	IsDark    bool
	Primary   string
	BodyFont  string
	HeadFont  string
	CardClass string
	HiddenCSS template.CSS
	FontsHref string

	Sections []exportSection
}

// exportSection 是导出页里的一个区块。
type exportSection struct {
	ID        portfolio.SectionID
	Title     string
	EmbedURL  string
	Bio       string
	Technical []string
	Soft      []string
	Projects  []portfolio.Project
}

// exportCardClass 把风格映射到导出样式表里的卡片类。
// 只区分 Glass/Minimal/Neobrutal，其余风格统一用 elegant 兜底。
func exportCardClass(style portfolio.UIStyle) string {
	switch style {
	case portfolio.StyleGlass:
		return "glass"
	case portfolio.StyleMinimal:
		return "minimal"
	case portfolio.StyleNeobrutal:
		return "neobrutal"
	default:
		return "elegant"
	}
}

// exportKinds 是导出路径支持的区块子集。
var exportKinds = map[portfolio.SectionID]bool{
	portfolio.SectionVSL:      true,
	portfolio.SectionAbout:    true,
	portfolio.SectionSkills:   true,
	portfolio.SectionProjects: true,
}

// ExportStandalone 把文档序列化成一份完全自包含的 HTML 字符串，
// 除了内联的观察器脚本外没有任何运行时依赖。
func ExportStandalone(doc portfolio.Document) (string, error) {
	portfolio.Normalize(&doc)

	view := exportView{
		Name:       doc.Name,
		Subheading: doc.Subheading,
		BadgeText:  doc.BadgeText,
		Photo:      doc.Photo,
		IsDark:     doc.Settings.Theme == portfolio.ThemeDark,
		Primary:    doc.Settings.PrimaryColor,
		BodyFont:   string(doc.Settings.BodyFont),
		HeadFont:   string(doc.Settings.HeadingFont),
		CardClass:  exportCardClass(doc.Settings.UIStyle),
		HiddenCSS:  template.CSS(HiddenStateCSS(doc.Settings.Animation)),
		FontsHref:  googleFontsHref,
	}

	for _, id := range doc.SectionOrder {
		if !exportKinds[id] || !SectionPresent(id, &doc) {
			continue
		}
		sec := exportSection{ID: id, Title: doc.SectionTitle(id)}
		switch id {
		case portfolio.SectionVSL:
			sec.EmbedURL = EmbedURL(portfolio.ExtractVideoID(doc.VSLURL), doc.VSLAutoplay, doc.VSLShowPlayer)
		case portfolio.SectionAbout:
			sec.Bio = doc.Bio
		case portfolio.SectionSkills:
			sec.Technical = portfolio.SplitSkills(doc.Skills)
			sec.Soft = portfolio.SplitSkills(doc.SoftSkills)
		case portfolio.SectionProjects:
			sec.Projects = doc.Projects
		}
		view.Sections = append(view.Sections, sec)
	}

	var buf bytes.Buffer
	if err := exportTemplate.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("export standalone html: %w", err)
	}
	return buf.String(), nil
}

// ExportFilename 从站点名派生下载文件名：转小写、去掉空白、加固定后缀。
func ExportFilename(name string) string {
	cleaned := strings.ToLower(strings.Join(strings.Fields(name), ""))
	return cleaned + "-portfolio.html"
}

var exportTemplate = template.Must(template.New("export").Funcs(sectionFuncs).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Name}} | Portfolio</title>
<script src="https://cdn.tailwindcss.com"></script>
<link href="{{safeURL .FontsHref}}" rel="stylesheet">
<style>
body { font-family: '{{safeCSS .BodyFont}}', sans-serif; -webkit-font-smoothing: antialiased; }
h1, h2, h3, h4 { font-family: '{{safeCSS .HeadFont}}', sans-serif; }
{{.HiddenCSS}}
.reveal.visible { opacity: 1; transform: none; filter: none; transition: all 0.8s cubic-bezier(0.16, 1, 0.3, 1); }
.glass { background: {{if .IsDark}}rgba(30,41,59,0.9){{else}}rgba(255,255,255,1){{end}}; border: 1px solid {{if .IsDark}}rgba(51,65,85,1){{else}}rgba(226,232,240,1){{end}}; border-radius: 40px; }
.minimal { background: transparent; border: 0; border-radius: 0; box-shadow: none; }
.neobrutal { background: white; border: 4px solid black; box-shadow: 8px 8px 0px 0px black; border-radius: 0; }
.elegant { background: {{if .IsDark}}#0f172a{{else}}#f8fafc{{end}}; border: 1px solid {{if .IsDark}}#1e293b{{else}}#e2e8f0{{end}}; border-radius: 32px; }
</style>
</head>
<body class="{{if .IsDark}}bg-slate-950 text-slate-100{{else}}bg-slate-50 text-slate-900{{end}} transition-colors">
<div class="max-w-5xl mx-auto py-24 px-6 space-y-12">
  <header class="reveal {{.CardClass}} p-12 shadow-2xl flex flex-col md:flex-row items-center gap-12 overflow-hidden relative">
    <div class="absolute top-0 right-0 w-80 h-80 blur-[140px] rounded-full opacity-20 pointer-events-none" style="background: {{safeCSS .Primary}}"></div>
    {{if .Photo}}<img src="{{safeURL .Photo}}" alt="{{.Name}}" class="w-48 h-48 rounded-[40px] object-cover border-4 border-white shadow-xl relative z-10">{{end}}
    <div class="relative z-10 text-center md:text-left">
      {{if .BadgeText}}<span class="px-4 py-1.5 rounded-full text-[10px] font-black uppercase tracking-widest border mb-6 inline-block">{{.BadgeText}}</span>{{end}}
      <h1 class="text-6xl font-black tracking-tighter mb-2 leading-none" style="color: {{safeCSS .Primary}}">{{.Name}}</h1>
      {{if .Subheading}}<p class="text-2xl font-bold opacity-60">{{.Subheading}}</p>{{end}}
    </div>
  </header>
  <main class="grid grid-cols-1 md:grid-cols-2 gap-6">
    {{$card := .CardClass}}
    {{range .Sections}}
    {{if eq (printf "%s" .ID) "vsl"}}
    <div class="reveal {{$card}} col-span-1 md:col-span-2 p-10 overflow-hidden">
      <span class="text-[10px] font-black uppercase tracking-widest opacity-40 mb-10 block">{{.Title}}</span>
      <div class="aspect-video w-full rounded-[32px] overflow-hidden shadow-2xl border-4 border-white/20">
        <iframe src="{{safeURL .EmbedURL}}" class="w-full h-full border-0" allowfullscreen></iframe>
      </div>
    </div>
    {{else if eq (printf "%s" .ID) "about"}}
    <div class="reveal {{$card}} col-span-1 md:col-span-2 p-10">
      <span class="text-[10px] font-black uppercase tracking-widest opacity-40 mb-6 block">{{.Title}}</span>
      <p class="text-3xl font-black tracking-tight leading-tight">{{.Bio}}</p>
    </div>
    {{else if eq (printf "%s" .ID) "skills"}}
    <div class="reveal {{$card}} p-10">
      <span class="text-[10px] font-black uppercase tracking-widest opacity-40 mb-6 block">{{.Title}}</span>
      {{if .Technical}}
      <div class="mb-6">
        <h4 class="text-sm font-black uppercase tracking-widest opacity-60 mb-3">Technical Skills</h4>
        <div class="flex flex-wrap gap-2">{{range .Technical}}<span class="px-4 py-2 rounded-xl text-xs font-bold border">{{.}}</span>{{end}}</div>
      </div>
      {{end}}
      {{if .Soft}}
      <div>
        <h4 class="text-sm font-black uppercase tracking-widest opacity-60 mb-3">Soft Skills</h4>
        <div class="flex flex-wrap gap-2">{{range .Soft}}<span class="px-4 py-2 rounded-xl text-xs font-bold border">{{.}}</span>{{end}}</div>
      </div>
      {{end}}
    </div>
    {{else if eq (printf "%s" .ID) "projects"}}
    <div class="reveal {{$card}} col-span-1 md:col-span-2 p-10">
      <span class="text-[10px] font-black uppercase tracking-widest opacity-40 mb-8 block">{{.Title}}</span>
      <div class="grid grid-cols-1 sm:grid-cols-2 gap-8">
        {{range .Projects}}
        <div class="flex items-start gap-4">
          {{if .Image}}<div class="w-16 h-16 rounded-xl flex-shrink-0 overflow-hidden"><img src="{{safeURL .Image}}" alt="{{.Title}}" class="w-full h-full object-cover"></div>{{end}}
          <div><h4 class="text-lg font-bold">{{.Title}}</h4><p class="text-xs opacity-60">{{.Description}}</p></div>
        </div>
        {{end}}
      </div>
    </div>
    {{end}}
    {{end}}
  </main>
</div>
<script>
  const observer = new IntersectionObserver((entries) => {
    entries.forEach(entry => { if (entry.isIntersecting) entry.target.classList.add('visible'); });
  }, { threshold: 0.1 });
  document.querySelectorAll('.reveal').forEach(el => observer.observe(el));
</script>
</body>
</html>
`))
