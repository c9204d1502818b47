package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"

	"folioswift/internal/api/middleware"
	"folioswift/internal/portfolio"
	"folioswift/internal/render"
	"folioswift/internal/sites"
	"folioswift/internal/storage"
	"folioswift/internal/tasks"
)

// SiteHandler 负责作品集站点的保存、发布与导出接口。
type SiteHandler struct {
	store       sites.Store
	asynqClient *asynq.Client
	storage     *storage.Client
	maxSites    int
}

// NewSiteHandler 构造 SiteHandler。
func NewSiteHandler(store sites.Store, asynqClient *asynq.Client, storageClient *storage.Client, maxSites int) *SiteHandler {
	return &SiteHandler{
		store:       store,
		asynqClient: asynqClient,
		storage:     storageClient,
		maxSites:    maxSites,
	}
}

// slug 只允许小写字母、数字和中划线，且不能以中划线开头或结尾。
var slugPattern = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9-]{0,62}[a-z0-9])?$`)

type publishSiteRequest struct {
	Slug         string             `json:"slug" binding:"required"`
	PreviousSlug string             `json:"previous_slug"`
	Document     portfolio.Document `json:"document" binding:"required"`
}

type siteListItem struct {
	ID        uint      `json:"id"`
	Slug      string    `json:"slug"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}

type siteResponse struct {
	ID        uint               `json:"id"`
	Slug      string             `json:"slug"`
	Status    string             `json:"status"`
	Document  portfolio.Document `json:"document"`
	UpdatedAt time.Time          `json:"updated_at"`
}

func newSiteResponse(r *sites.Record) siteResponse {
	return siteResponse{
		ID:        r.ID,
		Slug:      r.Slug,
		Status:    r.Status,
		Document:  r.Document,
		UpdatedAt: r.UpdatedAt,
	}
}

// ListSites 列出用户全部站点，更新时间倒序。
func (h *SiteHandler) ListSites(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	records, err := h.store.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		Internal(c, "failed to list sites")
		return
	}

	items := make([]siteListItem, 0, len(records))
	for _, r := range records {
		items = append(items, siteListItem{
			ID:        r.ID,
			Slug:      r.Slug,
			Name:      r.Document.Name,
			Status:    r.Status,
			UpdatedAt: r.UpdatedAt,
		})
	}

	c.JSON(http.StatusOK, items)
}

// GetSite 返回用户名下指定 slug 的站点。
func (h *SiteHandler) GetSite(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	record, err := h.getSiteForUser(c, userID)
	if err != nil {
		return
	}

	c.JSON(http.StatusOK, newSiteResponse(record))
}

// PublishSite 保存（必要时改名）并发布一个站点。
// slug 冲突返回 409，调用方据此提示用户换一个地址。
func (h *SiteHandler) PublishSite(c *gin.Context) {
	var req publishSiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	if !slugPattern.MatchString(req.Slug) {
		BadRequest(c, "invalid slug")
		return
	}
	if req.PreviousSlug != "" && !slugPattern.MatchString(req.PreviousSlug) {
		BadRequest(c, "invalid previous slug")
		return
	}

	ctx := c.Request.Context()

	// 限额只约束新建；更新和改名不受影响。
	if _, err := h.store.Get(ctx, req.Slug); errors.Is(err, sites.ErrNotFound) && req.PreviousSlug == "" {
		count, err := h.store.CountByOwner(ctx, userID)
		if err != nil {
			Internal(c, "failed to count sites")
			return
		}
		if h.maxSites > 0 && count >= int64(h.maxSites) {
			Forbidden(c, "site limit reached")
			return
		}
	}

	record, err := h.store.Save(ctx, req.Slug, req.Document, userID, req.PreviousSlug)
	switch {
	case errors.Is(err, sites.ErrSlugTaken):
		Conflict(c, "slug already taken")
		return
	case errors.Is(err, sites.ErrNotFound):
		NotFound(c, "site not found")
		return
	case err != nil:
		Internal(c, "failed to save site")
		return
	}

	c.JSON(http.StatusOK, newSiteResponse(record))
}

// DeleteSite 删除用户名下指定 slug 的站点。
func (h *SiteHandler) DeleteSite(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	ctx := c.Request.Context()
	slug := c.Param("slug")
	err := h.store.Delete(ctx, slug, userID)
	switch {
	case errors.Is(err, sites.ErrNotFound):
		NotFound(c, "site not found")
		return
	case err != nil:
		Internal(c, "failed to delete site")
		return
	}

	// 导出产物清理失败不影响删除结果。
	prefix := fmt.Sprintf("exports/%d/%s/", userID, slug)
	if err := h.storage.DeletePrefix(ctx, prefix); err != nil {
		middleware.LoggerFromContext(c).Warn("delete export artifacts failed",
			slog.String("prefix", prefix),
			slog.Any("error", err),
		)
	}

	c.Status(http.StatusNoContent)
}

// ExportSite 将静态导出任务入队并立即返回 202。
func (h *SiteHandler) ExportSite(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	record, err := h.getSiteForUser(c, userID)
	if err != nil {
		return
	}

	correlationID := middleware.GetCorrelationID(c)
	task, err := tasks.NewExportSiteTask(record.ID, correlationID)
	if err != nil {
		Internal(c, "failed to create task")
		return
	}

	info, err := h.asynqClient.Enqueue(task, asynq.MaxRetry(5))
	if err != nil {
		Internal(c, "failed to enqueue site export")
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"message": "export request accepted",
		"task_id": info.ID,
	})
}

// GetExportLink 生成已导出产物的预签名下载链接。
func (h *SiteHandler) GetExportLink(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	record, err := h.getSiteForUser(c, userID)
	if err != nil {
		return
	}

	if record.ExportURL == "" {
		Conflict(c, "export not ready")
		return
	}

	ctx := c.Request.Context()
	filename := render.ExportFilename(record.Document.Name)
	htmlURL, err := h.storage.GeneratePresignedURLWithParams(ctx, record.ExportURL, 5*time.Minute, map[string]string{
		"response-content-disposition": `attachment; filename="` + filename + `"`,
	})
	if err != nil {
		Internal(c, "failed to generate download link")
		return
	}

	resp := gin.H{"html_url": htmlURL}
	if record.PdfURL != "" {
		pdfURL, err := h.storage.GeneratePresignedURL(ctx, record.PdfURL, 5*time.Minute)
		if err != nil {
			Internal(c, "failed to generate download link")
			return
		}
		resp["pdf_url"] = pdfURL
	}

	c.JSON(http.StatusOK, resp)
}

// DownloadSite 同步渲染独立 HTML 并作为附件返回。
func (h *SiteHandler) DownloadSite(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	record, err := h.getSiteForUser(c, userID)
	if err != nil {
		return
	}

	html, err := render.ExportStandalone(record.Document)
	if err != nil {
		Internal(c, "failed to render site")
		return
	}

	filename := render.ExportFilename(record.Document.Name)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// getSiteForUser 读取 slug 对应记录并校验归属，失败时直接写响应。
func (h *SiteHandler) getSiteForUser(c *gin.Context, userID uint) (*sites.Record, error) {
	record, err := h.store.Get(c.Request.Context(), c.Param("slug"))
	switch {
	case errors.Is(err, sites.ErrNotFound):
		NotFound(c, "site not found")
		return nil, err
	case err != nil:
		Internal(c, "failed to query site")
		return nil, err
	}
	if record.OwnerID != userID {
		NotFound(c, "site not found")
		return nil, sites.ErrNotFound
	}
	return record, nil
}
