package render

import (
	"bytes"
	"fmt"
	"html/template"

	"folioswift/internal/portfolio"
)

// maxNavItems 是浮动导航里最多展示的区块数。
const maxNavItems = 9

// Options 控制一次组合的运行环境差异。
type Options struct {
	// ScrollContainerID 是内嵌预览的滚动容器元素 ID。
	// 为空表示发布页场景，reveal 观察器挂在视口上。
	ScrollContainerID string
}

// NavItem 是浮动导航里的一个跳转项。
type NavItem struct {
	ID    portfolio.SectionID
	Title string
}

// BentoLayout 是 bento 拆分模式的排布结果。
// Lead 里的区块（vsl/about）先占满整行，其余按位置奇偶拆进左右两列。
type BentoLayout struct {
	Lead  []*Section
	Left  []*Section
	Right []*Section
}

// Page 是组合完成、可直接渲染成 HTML 的整页描述。
type Page struct {
	Title      string
	Name       string
	Subheading string
	BadgeText  string
	Photo      string

	Vibe        *Vibe
	HeaderStyle SectionStyle
	FooterStyle SectionStyle
	Background  string
	BodyFont    string
	HeadingFont string
	Primary     string

	NavbarEnabled bool
	Nav           []NavItem

	Sections []*Section
	Bento    *BentoLayout

	HiddenCSS         template.CSS
	FontsHref         string
	ScrollContainerID string
}

// googleFontsHref 一次性引入全部可选字体，风格切换不需要换链接。
const googleFontsHref = "https://fonts.googleapis.com/css2?family=Plus+Jakarta+Sans:wght@400;600;700;800;900&family=Space+Grotesk:wght@400;700&family=Playfair+Display:ital,wght@0,700;1,400&family=Inter:wght@400;700;900&family=Outfit:wght@400;700;900&family=Montserrat:wght@400;700;900&family=Syne:wght@400;700;800&family=DM+Sans:wght@400;700&display=swap"

// Compose 把文档组合成整页描述。输入先做归一化（在副本上，不改动调用方
// 的文档），再按归一化后的顺序渲染各区块，前提不满足的区块直接跳过。
// 同一文档连续组合两次得到的结构完全一致。
func Compose(doc portfolio.Document, opts Options) (*Page, error) {
	portfolio.Normalize(&doc)
	vibe := ResolveVibe(doc.Settings.UIStyle)

	var sections []*Section
	for _, id := range doc.SectionOrder {
		sec, err := renderSection(id, &doc, vibe)
		if err != nil {
			return nil, fmt.Errorf("compose page: %w", err)
		}
		if sec != nil {
			sections = append(sections, sec)
		}
	}

	var nav []NavItem
	if doc.NavbarEnabled {
		for _, sec := range sections {
			if len(nav) == maxNavItems {
				break
			}
			nav = append(nav, NavItem{ID: sec.ID, Title: sec.Title})
		}
	}

	page := &Page{
		Title:             doc.Name,
		Name:              doc.Name,
		Subheading:        doc.Subheading,
		BadgeText:         doc.BadgeText,
		Photo:             doc.Photo,
		Vibe:              vibe,
		HeaderStyle:       ResolveSectionStyle(&doc.Settings, "header"),
		FooterStyle:       ResolveSectionStyle(&doc.Settings, portfolio.SectionContact),
		Background:        doc.Settings.BackgroundColor,
		BodyFont:          string(doc.Settings.BodyFont),
		HeadingFont:       string(doc.Settings.HeadingFont),
		Primary:           doc.Settings.PrimaryColor,
		NavbarEnabled:     doc.NavbarEnabled,
		Nav:               nav,
		HiddenCSS:         template.CSS(HiddenStateCSS(doc.Settings.Animation)),
		FontsHref:         googleFontsHref,
		ScrollContainerID: opts.ScrollContainerID,
	}

	if doc.Settings.BentoView && vibe.BentoCapable {
		page.Bento = splitBento(sections)
	} else {
		page.Sections = sections
	}
	return page, nil
}

// splitBento 执行 bento 拆分：vsl 与 about 依序占满整行，
// 其余区块按剩余序列中的位置奇偶分列，偶数位进左列，奇数位进右列。
func splitBento(sections []*Section) *BentoLayout {
	b := &BentoLayout{}
	var rest []*Section
	for _, sec := range sections {
		if sec.ID == portfolio.SectionVSL || sec.ID == portfolio.SectionAbout {
			b.Lead = append(b.Lead, sec)
		} else {
			rest = append(rest, sec)
		}
	}
	for i, sec := range rest {
		if i%2 == 0 {
			b.Left = append(b.Left, sec)
		} else {
			b.Right = append(b.Right, sec)
		}
	}
	return b
}

// Render 把页面描述执行成完整 HTML 文档。
func (p *Page) Render() (string, error) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, p); err != nil {
		return "", fmt.Errorf("render page: %w", err)
	}
	return buf.String(), nil
}

// sectionCard 把区块和页面上下文打包传给卡片局部模板。
type sectionCard struct {
	Section *Section
	Page    *Page
}

var pageFuncs = template.FuncMap{
	"card": func(s *Section, p *Page) sectionCard { return sectionCard{Section: s, Page: p} },
}

var pageTemplate = template.Must(template.New("page").Funcs(sectionFuncs).Funcs(pageFuncs).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}} | FolioSwift</title>
<script src="https://cdn.tailwindcss.com"></script>
<link href="{{safeURL .FontsHref}}" rel="stylesheet">
<style>
body { font-family: '{{safeCSS .BodyFont}}', sans-serif; -webkit-font-smoothing: antialiased; }
h1, h2, h3, h4 { font-family: '{{safeCSS .HeadingFont}}', sans-serif; }
.icon { width: 1.5rem; height: 1.5rem; }
.reveal { transition: all 1s cubic-bezier(0.16, 1, 0.3, 1); will-change: transform, opacity, filter; }
.visible { opacity: 1 !important; transform: none !important; filter: none !important; }
{{.HiddenCSS}}
#lightbox { display: none; }
#lightbox.open { display: flex; }
</style>
</head>
<body style="background-color: {{safeCSS .Background}}">
{{if .NavbarEnabled}}
<nav class="sticky top-8 mx-auto z-[100] w-max max-w-full px-8 py-4 bg-white/90 backdrop-blur-3xl border border-slate-200 rounded-full shadow-2xl flex items-center gap-4 mb-12">
  {{range .Nav}}<button data-nav="{{.ID}}" class="px-3 py-2 rounded-full hover:bg-black/5 text-slate-500 text-[10px] font-black uppercase tracking-widest transition-all">{{.Title}}</button>{{end}}
  {{if .Photo}}<img src="{{safeURL .Photo}}" alt="{{.Name}}" class="w-10 h-10 rounded-full border-2 border-slate-50 shadow-md object-cover">{{end}}
</nav>
{{end}}
<div class="{{.Vibe.Container}}">
  <header class="reveal {{.Vibe.Header}}" style="background-color: {{safeCSS .HeaderStyle.Background}}; color: {{safeCSS .HeaderStyle.Text}}">
    {{if .Photo}}<img src="{{safeURL .Photo}}" alt="{{.Name}}" class="w-56 h-56 object-cover border-[6px] border-white shadow-2xl rounded-[72px] flex-shrink-0">{{end}}
    <div class="flex-grow">
      {{if .BadgeText}}<div class="{{.Vibe.Badge}}">{{.BadgeText}}</div>{{end}}
      <h1 class="text-7xl md:text-9xl font-[1000] tracking-[-0.07em] mb-4 leading-none" style="color: {{safeCSS .HeaderStyle.Heading}}">{{.Name}}</h1>
      {{if .Subheading}}<p class="text-2xl md:text-3xl font-black opacity-40 leading-tight">{{.Subheading}}</p>{{end}}
    </div>
  </header>
  {{if .Bento}}
  {{range .Bento.Lead}}{{template "sectionCard" (card . $)}}{{end}}
  <div class="grid grid-cols-1 md:grid-cols-2 gap-12 items-start">
    <div class="space-y-12">{{range .Bento.Left}}{{template "sectionCard" (card . $)}}{{end}}</div>
    <div class="space-y-12">{{range .Bento.Right}}{{template "sectionCard" (card . $)}}{{end}}</div>
  </div>
  {{else if .Vibe.FlatGrid}}
  {{range .Sections}}{{template "sectionCard" (card . $)}}{{end}}
  {{else}}
  <div class="{{.Vibe.Grid}}">
    {{range .Sections}}{{template "sectionCard" (card . $)}}{{end}}
  </div>
  {{end}}
  <footer class="reveal py-40 text-center opacity-20{{if .Vibe.FlatGrid}} md:col-span-12 border-r border-b border-black/10{{end}}" style="color: {{safeCSS .FooterStyle.Text}}">
    <p class="text-[11px] font-black uppercase tracking-[0.6em]">Powered by FolioSwift</p>
  </footer>
</div>
<div id="lightbox" class="fixed inset-0 z-[1000] bg-black/95 backdrop-blur-xl items-center justify-center p-4 md:p-20">
  <img id="lightbox-img" src="" alt="" class="max-w-full max-h-full object-contain shadow-2xl">
</div>
<script>
(function () {
  var containerId = {{.ScrollContainerID}};
  var container = containerId ? document.getElementById(containerId) : null;
  var observer = new IntersectionObserver(function (entries) {
    entries.forEach(function (entry) {
      if (entry.isIntersecting) {
        entry.target.classList.add('visible');
      } else if (entry.boundingClientRect.top > (container ? container.clientHeight : window.innerHeight)) {
        entry.target.classList.remove('visible');
      }
    });
  }, { threshold: 0.1, root: container || null, rootMargin: '0px 0px -50px 0px' });
  document.querySelectorAll('.reveal').forEach(function (el) { observer.observe(el); });

  document.querySelectorAll('[data-nav]').forEach(function (btn) {
    btn.addEventListener('click', function () {
      var el = document.getElementById(btn.getAttribute('data-nav'));
      if (el) el.scrollIntoView({ behavior: 'smooth', block: 'start' });
    });
  });

  var lightbox = document.getElementById('lightbox');
  var lightboxImg = document.getElementById('lightbox-img');
  document.querySelectorAll('.lightbox-trigger').forEach(function (el) {
    el.addEventListener('click', function () {
      lightboxImg.src = el.getAttribute('data-full');
      lightbox.classList.add('open');
    });
  });
  lightbox.addEventListener('click', function (e) {
    if (e.target !== lightboxImg) lightbox.classList.remove('open');
  });
})();
</script>
</body>
</html>
{{define "sectionCard"}}
{{$s := .Section}}{{$p := .Page}}
<section id="{{$s.ID}}" class="reveal {{$s.Span}} {{$p.Vibe.Card}}" style="background-color: {{safeCSS $s.Style.Background}}; color: {{safeCSS $s.Style.Text}}; font-family: '{{safeCSS $s.Style.BodyFont}}'">
  <div class="flex items-center gap-4 mb-10">
    <span class="w-2 h-2 rounded-full" style="background-color: {{safeCSS $p.Primary}}"></span>
    <span class="text-[11px] font-black uppercase tracking-[0.5em] opacity-40" style="color: {{safeCSS $s.Style.Heading}}">{{$s.Title}}</span>
  </div>
  {{$s.Body}}
</section>
{{end}}`))
