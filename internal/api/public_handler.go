package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"folioswift/internal/api/middleware"
	"folioswift/internal/render"
	"folioswift/internal/sites"
)

// PublicHandler 提供无需登录即可访问的页面。
type PublicHandler struct {
	store sites.Store
}

// NewPublicHandler 构造 PublicHandler。
func NewPublicHandler(store sites.Store) *PublicHandler {
	return &PublicHandler{store: store}
}

const landingHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>FolioSwift</title>
<script src="https://cdn.tailwindcss.com"></script>
</head>
<body class="bg-slate-950 text-white min-h-screen flex items-center justify-center">
<div class="text-center px-6">
<h1 class="text-5xl font-bold mb-4">FolioSwift</h1>
<p class="text-slate-400 text-lg">Build and publish your portfolio site in minutes.</p>
</div>
</body>
</html>`

// Landing 返回产品首页。
func (h *PublicHandler) Landing(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(landingHTML))
}

// ViewSite 渲染 /p/:slug 下的公开站点。
// 查不到或渲染失败都回落到首页，但日志级别不同：
// 前者是正常的未命中，后者需要告警。
func (h *PublicHandler) ViewSite(c *gin.Context) {
	slug := c.Param("slug")
	logger := middleware.LoggerFromContext(c).With(slog.String("slug", slug))

	record, err := h.store.Get(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, sites.ErrNotFound) {
			logger.Info("public site not found")
		} else {
			logger.Error("load public site failed", slog.Any("error", err))
		}
		h.Landing(c)
		return
	}

	page, err := render.Compose(record.Document, render.Options{})
	if err != nil {
		logger.Error("compose public site failed", slog.Any("error", err))
		h.Landing(c)
		return
	}
	html, err := page.Render()
	if err != nil {
		logger.Error("render public site failed", slog.Any("error", err))
		h.Landing(c)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
