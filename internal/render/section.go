package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"folioswift/internal/portfolio"
)

// Section 是渲染完成的一个内容区块。
type Section struct {
	ID    portfolio.SectionID
	Title string
	Span  string
	Style SectionStyle
	Body  template.HTML
}

// SectionPresent 判断区块的最小数据前提是否满足。
// 不满足的区块被静默跳过，组合器和导航共用同一套判定。
func SectionPresent(id portfolio.SectionID, doc *portfolio.Document) bool {
	switch id {
	case portfolio.SectionVSL:
		return portfolio.ExtractVideoID(doc.VSLURL) != ""
	case portfolio.SectionAbout:
		return strings.TrimSpace(doc.Bio) != ""
	case portfolio.SectionSkills:
		return len(portfolio.SplitSkills(doc.Skills))+len(portfolio.SplitSkills(doc.SoftSkills)) > 0
	case portfolio.SectionExperience:
		return len(doc.Experiences) > 0
	case portfolio.SectionProjects:
		return len(doc.Projects) > 0
	case portfolio.SectionAchievements:
		return len(doc.Achievements) > 0
	case portfolio.SectionCertifications:
		return len(doc.Certifications) > 0
	case portfolio.SectionGallery:
		return len(doc.Gallery) > 0
	case portfolio.SectionResume:
		return strings.TrimSpace(doc.Resume) != ""
	case portfolio.SectionContact:
		return len(contactDetails(doc)) > 0 || len(socialLinks(doc)) > 0 || len(doc.CustomLinks) > 0
	case portfolio.SectionEducation:
		return strings.TrimSpace(doc.Education) != ""
	default:
		return false
	}
}

// iconKeys 是链接 label 到内置图标的特判集合，匹配不区分大小写。
var iconKeys = map[string]bool{
	"github":    true,
	"youtube":   true,
	"instagram": true,
	"facebook":  true,
}

// linkIcon 把链接 label 归一化成图标键，未识别的 label 用通用图标。
func linkIcon(label string) string {
	key := strings.ToLower(strings.TrimSpace(label))
	if iconKeys[key] {
		return key
	}
	return "link"
}

// iconSVG 是页面里用到的全部内联图标。
var iconSVG = map[string]template.HTML{
	"github":    `<svg viewBox="0 0 24 24" fill="currentColor" class="icon"><path d="M12 2a10 10 0 0 0-3.16 19.49c.5.09.68-.22.68-.48v-1.7c-2.78.6-3.37-1.34-3.37-1.34-.45-1.16-1.11-1.47-1.11-1.47-.91-.62.07-.6.07-.6 1 .07 1.53 1.03 1.53 1.03.9 1.52 2.34 1.08 2.91.83.09-.65.35-1.09.63-1.34-2.22-.25-4.56-1.11-4.56-4.94 0-1.1.39-1.99 1.03-2.69-.1-.25-.45-1.27.1-2.64 0 0 .84-.27 2.75 1.02a9.58 9.58 0 0 1 5 0c1.91-1.29 2.75-1.02 2.75-1.02.55 1.37.2 2.39.1 2.64.64.7 1.03 1.59 1.03 2.69 0 3.84-2.34 4.68-4.57 4.93.36.31.68.92.68 1.85V21c0 .27.18.58.69.48A10 10 0 0 0 12 2z"/></svg>`,
	"youtube":   `<svg viewBox="0 0 24 24" fill="currentColor" class="icon"><path d="M23.5 6.2a3 3 0 0 0-2.12-2.12C19.5 3.55 12 3.55 12 3.55s-7.5 0-9.38.53A3 3 0 0 0 .5 6.2 31.2 31.2 0 0 0 0 12a31.2 31.2 0 0 0 .5 5.8 3 3 0 0 0 2.12 2.12c1.88.53 9.38.53 9.38.53s7.5 0 9.38-.53a3 3 0 0 0 2.12-2.12A31.2 31.2 0 0 0 24 12a31.2 31.2 0 0 0-.5-5.8zM9.6 15.6V8.4L15.8 12z"/></svg>`,
	"instagram": `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" class="icon"><rect x="2" y="2" width="20" height="20" rx="5"/><circle cx="12" cy="12" r="4"/><circle cx="17.5" cy="6.5" r="1" fill="currentColor"/></svg>`,
	"facebook":  `<svg viewBox="0 0 24 24" fill="currentColor" class="icon"><path d="M22 12a10 10 0 1 0-11.56 9.88v-6.99H7.9V12h2.54V9.8c0-2.5 1.5-3.89 3.78-3.89 1.1 0 2.24.2 2.24.2v2.46H15.2c-1.24 0-1.63.77-1.63 1.56V12h2.78l-.45 2.89h-2.33v6.99A10 10 0 0 0 22 12z"/></svg>`,
	"linkedin":  `<svg viewBox="0 0 24 24" fill="currentColor" class="icon"><path d="M19 3a2 2 0 0 1 2 2v14a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2V5a2 2 0 0 1 2-2h14zM8.3 18.3V10H5.7v8.3h2.6zM7 8.8a1.5 1.5 0 1 0 0-3 1.5 1.5 0 0 0 0 3zm11.3 9.5v-4.7c0-2.5-1.34-3.67-3.12-3.67-1.44 0-2.08.8-2.44 1.36V10h-2.6v8.3h2.6v-4.6c0-1.22.87-1.76 1.67-1.76.8 0 1.3.53 1.3 1.72v4.64h2.6z"/></svg>`,
	"x":         `<svg viewBox="0 0 24 24" fill="currentColor" class="icon"><path d="M18.9 2H22l-6.77 7.74L23.2 22h-6.23l-4.88-6.38L6.5 22H3.38l7.24-8.28L1.3 2h6.39l4.41 5.83L18.9 2zm-1.1 18.13h1.73L7.08 3.77H5.22l12.58 16.36z"/></svg>`,
	"whatsapp":  `<svg viewBox="0 0 24 24" fill="currentColor" class="icon"><path d="M12 2a10 10 0 0 0-8.66 15L2 22l5.16-1.35A10 10 0 1 0 12 2zm5.4 14.2c-.23.65-1.34 1.24-1.85 1.28-.5.05-.97.23-3.27-.68-2.76-1.09-4.53-3.9-4.67-4.08-.14-.18-1.12-1.49-1.12-2.85 0-1.35.71-2.02.96-2.3.25-.27.55-.34.73-.34h.53c.17 0 .4-.06.62.47.23.55.78 1.9.85 2.04.07.14.11.3.02.48-.09.18-.14.3-.27.46l-.41.48c-.14.14-.28.29-.12.56.16.28.72 1.2 1.56 1.94 1.07.95 1.97 1.25 2.25 1.39.27.14.44.12.6-.07.16-.18.69-.8.87-1.08.18-.27.37-.23.62-.14.25.1 1.6.76 1.87.9.27.13.46.2.52.32.07.12.07.66-.16 1.32z"/></svg>`,
	"mail":      `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" class="icon"><rect x="2" y="4" width="20" height="16" rx="2"/><path d="m2 7 10 6L22 7"/></svg>`,
	"phone":     `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" class="icon"><path d="M22 16.92v3a2 2 0 0 1-2.18 2 19.79 19.79 0 0 1-8.63-3.07 19.5 19.5 0 0 1-6-6A19.79 19.79 0 0 1 2.08 4.18 2 2 0 0 1 4.06 2h3a2 2 0 0 1 2 1.72c.13.96.36 1.9.7 2.81a2 2 0 0 1-.45 2.11L8.09 9.91a16 16 0 0 0 6 6l1.27-1.27a2 2 0 0 1 2.11-.45c.9.34 1.85.57 2.81.7A2 2 0 0 1 22 16.92z"/></svg>`,
	"pin":       `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" class="icon"><path d="M20 10c0 6-8 12-8 12s-8-6-8-12a8 8 0 0 1 16 0z"/><circle cx="12" cy="10" r="3"/></svg>`,
	"link":      `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" class="icon"><path d="M10 13a5 5 0 0 0 7.54.54l3-3a5 5 0 0 0-7.07-7.07l-1.72 1.71"/><path d="M14 11a5 5 0 0 0-7.54-.54l-3 3a5 5 0 0 0 7.07 7.07l1.71-1.71"/></svg>`,
}

var sectionFuncs = template.FuncMap{
	"safeCSS": func(s string) template.CSS { return template.CSS(s) },
	"safeURL": func(s string) template.URL { return template.URL(s) },
	"icon": func(name string) template.HTML {
		if svg, ok := iconSVG[name]; ok {
			return svg
		}
		return iconSVG["link"]
	},
	"linkIcon": linkIcon,
}

var sectionTemplates = template.Must(template.New("sections").Funcs(sectionFuncs).Parse(`
{{define "vsl"}}
<div class="aspect-video w-full rounded-[32px] overflow-hidden shadow-2xl border-4 border-white/20">
  <iframe src="{{safeURL .EmbedURL}}" class="w-full h-full border-0" allowfullscreen></iframe>
</div>
{{end}}

{{define "about"}}
<p class="text-4xl font-black tracking-tighter leading-tight" style="color: {{safeCSS .Style.Heading}}; font-family: '{{safeCSS .Style.HeadingFont}}'">{{.Bio}}</p>
{{end}}

{{define "skills"}}
{{if .Technical}}
<div class="mb-10">
  <h4 class="text-sm font-black uppercase tracking-widest opacity-60 mb-4">Technical Skills</h4>
  <div class="flex flex-wrap gap-4">
    {{range .Technical}}<span class="skill-chip px-6 py-4 text-xs font-black border" style="color: {{safeCSS $.Style.Text}}; border-color: {{safeCSS $.Primary}}40">{{.}}</span>{{end}}
  </div>
</div>
{{end}}
{{if .Soft}}
<div>
  <h4 class="text-sm font-black uppercase tracking-widest opacity-60 mb-4">Soft Skills</h4>
  <div class="flex flex-wrap gap-4">
    {{range .Soft}}<span class="skill-chip px-6 py-4 text-xs font-black border" style="color: {{safeCSS $.Style.Text}}; border-color: {{safeCSS $.Primary}}40">{{.}}</span>{{end}}
  </div>
</div>
{{end}}
{{end}}

{{define "experience"}}
<div class="space-y-20">
  {{range .Experiences}}
  <div class="flex flex-col md:flex-row justify-between gap-8 border-l-[4px] pl-10" style="border-color: {{safeCSS $.Primary}}">
    <div class="flex-1">
      <h4 class="text-3xl font-black mb-2" style="color: {{safeCSS $.Style.Heading}}">{{.Role}}</h4>
      <p class="text-sm font-black uppercase tracking-widest opacity-60 mb-6">{{.Company}}</p>
      <p class="text-base leading-relaxed opacity-80" style="color: {{safeCSS $.Style.Text}}">{{.Description}}</p>
    </div>
    <span class="text-[11px] font-black uppercase opacity-40 whitespace-nowrap pt-2">{{.Period}}</span>
  </div>
  {{end}}
</div>
{{end}}

{{define "projects"}}
<div class="grid grid-cols-1 gap-16">
  {{range .Projects}}
  <div class="group flex flex-col md:flex-row gap-10 items-start">
    {{if .Image}}<div class="w-full md:w-64 h-44 flex-shrink-0 overflow-hidden shadow-xl rounded-[40px]"><img src="{{safeURL .Image}}" alt="{{.Title}}" class="w-full h-full object-cover"></div>{{end}}
    <div class="flex-1">
      <h4 class="text-3xl font-black mb-4" style="color: {{safeCSS $.Style.Heading}}">{{.Title}}</h4>
      <p class="text-base opacity-70 leading-relaxed mb-4" style="color: {{safeCSS $.Style.Text}}">{{.Description}}</p>
      {{if .TechStack}}
      <div class="flex flex-wrap gap-2 mb-4">
        {{range .TechStack}}<span class="px-3 py-1 text-xs font-bold rounded-full border" style="border-color: {{safeCSS $.Primary}}40">{{.}}</span>{{end}}
      </div>
      {{end}}
      {{if .Links}}
      <div class="flex items-center gap-4 mt-4">
        {{range .Links}}
        <a href="{{safeURL .URL}}" target="_blank" rel="noopener" class="flex items-center gap-2 transition-colors">
          {{icon (linkIcon .Label)}}<span class="text-xs font-bold">{{.Label}}</span>
        </a>
        {{end}}
      </div>
      {{end}}
    </div>
  </div>
  {{end}}
</div>
{{end}}

{{define "achievements"}}
<div class="space-y-12">
  {{range .Achievements}}
  <div class="flex flex-col md:flex-row gap-8 items-start">
    {{if .Image}}<div class="w-full md:w-48 h-32 flex-shrink-0 overflow-hidden shadow-lg rounded-3xl"><img src="{{safeURL .Image}}" alt="{{.Title}}" class="w-full h-full object-cover"></div>{{end}}
    <div class="flex-1">
      <h4 class="text-2xl font-black mb-3" style="color: {{safeCSS $.Style.Heading}}">{{.Title}}</h4>
      <p class="text-base opacity-70 leading-relaxed" style="color: {{safeCSS $.Style.Text}}">{{.Description}}</p>
      {{if .Links}}
      <div class="flex items-center gap-4 mt-4">
        {{range .Links}}
        <a href="{{safeURL .URL}}" target="_blank" rel="noopener" class="flex items-center gap-2 transition-colors">
          {{icon (linkIcon .Label)}}<span class="text-xs font-bold">{{.Label}}</span>
        </a>
        {{end}}
      </div>
      {{end}}
    </div>
  </div>
  {{end}}
</div>
{{end}}

{{define "certifications"}}
<div class="space-y-8">
  {{range .Certifications}}
  <div class="flex items-start gap-6">
    {{if .Image}}<img src="{{safeURL .Image}}" alt="{{.Title}}" class="lightbox-trigger w-24 h-24 object-cover rounded-2xl shadow-sm cursor-pointer" data-full="{{safeURL .Image}}">{{end}}
    <div>
      {{if .Link}}<a href="{{safeURL .Link}}" target="_blank" rel="noopener"><h4 class="text-lg font-black" style="color: {{safeCSS $.Style.Heading}}">{{.Title}}</h4></a>{{else}}<h4 class="text-lg font-black" style="color: {{safeCSS $.Style.Heading}}">{{.Title}}</h4>{{end}}
      <p class="text-[10px] font-black uppercase opacity-40 tracking-widest">{{.Issuer}}{{if .Date}} &bull; {{.Date}}{{end}}</p>
      {{if .Description}}<p class="text-sm opacity-70 mt-2" style="color: {{safeCSS $.Style.Text}}">{{.Description}}</p>{{end}}
    </div>
  </div>
  {{end}}
</div>
{{end}}

{{define "gallery"}}
<div class="grid grid-cols-2 md:grid-cols-4 gap-6">
  {{range .Gallery}}
  <div class="lightbox-trigger aspect-square overflow-hidden shadow-lg cursor-pointer group relative rounded-3xl" data-full="{{safeURL .Image}}">
    <img src="{{safeURL .Image}}" alt="{{.Caption}}" class="w-full h-full object-cover group-hover:scale-110 transition-transform duration-500">
    {{if .Caption}}<div class="absolute bottom-0 inset-x-0 p-4 bg-black/50 opacity-0 group-hover:opacity-100 transition-opacity"><p class="text-white text-[10px] font-black uppercase tracking-widest">{{.Caption}}</p></div>{{end}}
  </div>
  {{end}}
</div>
{{end}}

{{define "resume"}}
<div class="flex flex-col items-center justify-center text-center">
  <a href="{{safeURL .Resume}}" download target="_blank" rel="noopener" class="px-12 py-5 font-black text-xs uppercase tracking-widest text-white shadow-2xl rounded-full" style="background-color: {{safeCSS .Primary}}">Get Full Resume</a>
</div>
{{end}}

{{define "contact"}}
{{if .Details}}
<div class="grid grid-cols-1 md:grid-cols-2 gap-8 mb-12">
  {{range .Details}}
  <div class="flex items-center gap-4">
    <span style="color: {{safeCSS $.Primary}}">{{icon .Icon}}</span>
    <span class="text-lg font-bold" style="color: {{safeCSS $.Style.Heading}}">{{.Value}}</span>
  </div>
  {{end}}
</div>
{{end}}
<div class="flex flex-wrap gap-6">
  {{range .Socials}}
  <a href="{{safeURL .URL}}" target="_blank" rel="noopener" class="social-tile w-16 h-16 flex items-center justify-center bg-white shadow-xl border rounded-[24px] transition-all hover:scale-110">{{icon .Icon}}</a>
  {{end}}
  {{range .CustomLinks}}
  <a href="{{safeURL .URL}}" target="_blank" rel="noopener" title="{{.Label}}" class="social-tile w-16 h-16 flex items-center justify-center bg-white shadow-xl border rounded-[24px] transition-all hover:scale-110">{{icon "link"}}</a>
  {{end}}
</div>
{{end}}

{{define "education"}}
<h3 class="text-2xl font-black mb-6" style="color: {{safeCSS .Style.Heading}}">{{.Education}}</h3>
{{if .EducationImage}}<img src="{{safeURL .EducationImage}}" alt="Education" class="w-full h-48 object-cover opacity-90 shadow-lg rounded-[40px]">{{end}}
{{end}}
`))

// contactDetail 是联系方式里的一行明细。
type contactDetail struct {
	Icon  string
	Value string
}

func contactDetails(doc *portfolio.Document) []contactDetail {
	var out []contactDetail
	if doc.Phone != "" {
		out = append(out, contactDetail{Icon: "phone", Value: doc.Phone})
	}
	if doc.Email != "" {
		out = append(out, contactDetail{Icon: "mail", Value: doc.Email})
	}
	if doc.Address != "" {
		out = append(out, contactDetail{Icon: "pin", Value: doc.Address})
	}
	return out
}

// socialLink 是联系区块底部的一个社交图标入口。
type socialLink struct {
	Icon string
	URL  string
}

// socialLinks 过滤掉空链接，WhatsApp 号码转换成 wa.me 链接（只保留数字）。
func socialLinks(doc *portfolio.Document) []socialLink {
	var out []socialLink
	if doc.LinkedIn != "" {
		out = append(out, socialLink{Icon: "linkedin", URL: doc.LinkedIn})
	}
	if doc.GitHub != "" {
		out = append(out, socialLink{Icon: "github", URL: doc.GitHub})
	}
	if doc.Instagram != "" {
		out = append(out, socialLink{Icon: "instagram", URL: doc.Instagram})
	}
	if doc.X != "" {
		out = append(out, socialLink{Icon: "x", URL: doc.X})
	}
	if digits := portfolio.SanitizeWhatsApp(doc.WhatsApp); digits != "" {
		out = append(out, socialLink{Icon: "whatsapp", URL: "https://wa.me/" + digits})
	}
	return out
}

// EmbedURL 根据视频 ID 和播放开关拼出可嵌入的播放地址。
func EmbedURL(videoID string, autoplay, showPlayer bool) string {
	autoplayParam, controlsParam := "0", "1"
	if autoplay {
		autoplayParam = "1"
	}
	if !showPlayer {
		controlsParam = "0"
	}
	return fmt.Sprintf("https://www.youtube.com/embed/%s?autoplay=%s&controls=%s", videoID, autoplayParam, controlsParam)
}

// renderSection 渲染单个区块。前提不满足时返回 (nil, nil)，这不是错误。
func renderSection(id portfolio.SectionID, doc *portfolio.Document, vibe *Vibe) (*Section, error) {
	if !SectionPresent(id, doc) {
		return nil, nil
	}
	style := ResolveSectionStyle(&doc.Settings, id)
	primary := doc.Settings.PrimaryColor

	var data any
	switch id {
	case portfolio.SectionVSL:
		data = struct {
			Style    SectionStyle
			EmbedURL string
		}{style, EmbedURL(portfolio.ExtractVideoID(doc.VSLURL), doc.VSLAutoplay, doc.VSLShowPlayer)}
	case portfolio.SectionAbout:
		data = struct {
			Style SectionStyle
			Bio   string
		}{style, doc.Bio}
	case portfolio.SectionSkills:
		data = struct {
			Style           SectionStyle
			Primary         string
			Technical, Soft []string
		}{style, primary, portfolio.SplitSkills(doc.Skills), portfolio.SplitSkills(doc.SoftSkills)}
	case portfolio.SectionExperience:
		data = struct {
			Style       SectionStyle
			Primary     string
			Experiences []portfolio.Experience
		}{style, primary, doc.Experiences}
	case portfolio.SectionProjects:
		data = struct {
			Style    SectionStyle
			Primary  string
			Projects []portfolio.Project
		}{style, primary, doc.Projects}
	case portfolio.SectionAchievements:
		data = struct {
			Style        SectionStyle
			Primary      string
			Achievements []portfolio.Achievement
		}{style, primary, doc.Achievements}
	case portfolio.SectionCertifications:
		data = struct {
			Style          SectionStyle
			Certifications []portfolio.Certification
		}{style, doc.Certifications}
	case portfolio.SectionGallery:
		data = struct {
			Style   SectionStyle
			Gallery []portfolio.GalleryItem
		}{style, doc.Gallery}
	case portfolio.SectionResume:
		data = struct {
			Style   SectionStyle
			Primary string
			Resume  string
		}{style, primary, doc.Resume}
	case portfolio.SectionContact:
		data = struct {
			Style       SectionStyle
			Primary     string
			Details     []contactDetail
			Socials     []socialLink
			CustomLinks []portfolio.Link
		}{style, primary, contactDetails(doc), socialLinks(doc), doc.CustomLinks}
	case portfolio.SectionEducation:
		data = struct {
			Style          SectionStyle
			Education      string
			EducationImage string
		}{style, doc.Education, doc.EducationImage}
	default:
		return nil, nil
	}

	var buf bytes.Buffer
	if err := sectionTemplates.ExecuteTemplate(&buf, string(id), data); err != nil {
		return nil, fmt.Errorf("render section %s: %w", id, err)
	}
	return &Section{
		ID:    id,
		Title: doc.SectionTitle(id),
		Span:  vibe.SpanClass(id),
		Style: style,
		Body:  template.HTML(buf.String()),
	}, nil
}
