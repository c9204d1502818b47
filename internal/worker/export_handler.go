package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"folioswift/internal/errcode"
	"folioswift/internal/pdf"
	"folioswift/internal/render"
	"folioswift/internal/sites"
	"folioswift/internal/storage"
	"folioswift/internal/tasks"
)

// ExportTaskHandler 负责消费站点静态导出任务。
type ExportTaskHandler struct {
	store       sites.Store
	storage     *storage.Client
	redisClient *redis.Client
	logger      *slog.Logger
}

// NewExportTaskHandler 创建任务处理器。
func NewExportTaskHandler(
	store sites.Store,
	storageClient *storage.Client,
	redisClient *redis.Client,
	logger *slog.Logger,
) *ExportTaskHandler {
	return &ExportTaskHandler{
		store:       store,
		storage:     storageClient,
		redisClient: redisClient,
		logger:      logger,
	}
}

// ProcessTask 实现 asynq.Handler。
// HTML 导出是主产物，PDF 快照失败时任务仍算成功，但通知里带告警码。
func (h *ExportTaskHandler) ProcessTask(ctx context.Context, t *asynq.Task) (retErr error) {
	log := h.logger

	var payload tasks.ExportSitePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Error("unmarshal task payload failed", slog.Any("error", err))
		return err
	}

	log = log.With(
		slog.String("correlation_id", payload.CorrelationID),
		slog.Int("portfolio_id", int(payload.PortfolioID)),
	)
	log.Info("Starting site export task...")

	record, err := h.store.GetByID(ctx, payload.PortfolioID)
	if err != nil {
		if errors.Is(err, sites.ErrNotFound) {
			log.Warn("site not found, skipping task")
			return nil
		}
		log.Error("query site failed", slog.Any("error", err))
		return err
	}

	log = log.With(
		slog.Uint64("user_id", uint64(record.OwnerID)),
		slog.String("slug", record.Slug),
	)

	defer func() {
		if retErr == nil {
			return
		}
		if !isFinalAsynqAttempt(ctx) {
			return
		}

		notify := SiteExportNotifyMessage{
			Status:        "error",
			PortfolioID:   record.ID,
			Slug:          record.Slug,
			CorrelationID: payload.CorrelationID,
			ErrorCode:     errcode.SystemError,
			ErrorMessage:  strings.TrimSpace(retErr.Error()),
		}
		if err := h.publishExportNotify(ctx, record.OwnerID, notify); err != nil {
			log.Error("publish export error notification failed", slog.Any("error", err))
		}
	}()

	html, err := render.ExportStandalone(record.Document)
	if err != nil {
		log.Error("render standalone html failed", slog.Any("error", err))
		return err
	}

	htmlKey := fmt.Sprintf("exports/%d/%s/%s.html", record.OwnerID, record.Slug, uuid.NewString())
	htmlReader := strings.NewReader(html)
	if _, err := h.storage.UploadFile(ctx, htmlKey, htmlReader, int64(len(html)), "text/html; charset=utf-8"); err != nil {
		log.Error("upload html to minio failed", slog.Any("error", err))
		return err
	}

	pdfKey := ""
	pdfFailed := false
	snapshot, err := pdf.RenderSnapshot(html)
	if err != nil {
		log.Warn("render pdf snapshot failed", slog.Any("error", err))
		pdfFailed = true
	} else {
		pdfKey = fmt.Sprintf("exports/%d/%s/%s.pdf", record.OwnerID, record.Slug, uuid.NewString())
		pdfReader := bytes.NewReader(snapshot.PDF)
		if _, err := h.storage.UploadFile(ctx, pdfKey, pdfReader, int64(len(snapshot.PDF)), "application/pdf"); err != nil {
			log.Warn("upload pdf to minio failed", slog.Any("error", err))
			pdfKey = ""
			pdfFailed = true
		}

		if err := h.uploadPreviewImage(ctx, record, snapshot.Preview); err != nil {
			log.Warn("generate site preview failed", slog.Any("error", err))
		}
	}

	if err := h.store.SetArtifacts(ctx, record.ID, htmlKey, pdfKey, "exported"); err != nil {
		log.Error("update site artifacts failed", slog.Any("error", err))
		return err
	}

	notify := SiteExportNotifyMessage{
		Status:        "completed",
		PortfolioID:   record.ID,
		Slug:          record.Slug,
		CorrelationID: payload.CorrelationID,
		ErrorCode:     errcode.OK,
	}
	if pdfFailed {
		notify.ErrorCode = errcode.PartialExport
		notify.ErrorMessage = "PDF 快照生成失败，已只导出 HTML"
	}
	if err := h.publishExportNotify(ctx, record.OwnerID, notify); err != nil {
		log.Error("publish redis notification failed", slog.Any("error", err))
		return err
	}

	log.Info("Site export task completed successfully.")
	return nil
}

func (h *ExportTaskHandler) uploadPreviewImage(ctx context.Context, record *sites.Record, previewBytes []byte) error {
	if len(previewBytes) == 0 {
		return nil
	}
	objectName := fmt.Sprintf("thumbnails/site/%d/preview.jpg", record.ID)
	reader := bytes.NewReader(previewBytes)
	if _, err := h.storage.UploadFile(ctx, objectName, reader, int64(len(previewBytes)), "image/jpeg"); err != nil {
		return fmt.Errorf("upload preview image: %w", err)
	}
	return nil
}

func (h *ExportTaskHandler) publishExportNotify(ctx context.Context, userID uint, notify SiteExportNotifyMessage) error {
	data, err := json.Marshal(notify)
	if err != nil {
		return fmt.Errorf("marshal notification payload: %w", err)
	}
	channel := fmt.Sprintf("user_notify:%d", userID)
	if err := h.redisClient.Publish(ctx, channel, data).Err(); err != nil {
		return fmt.Errorf("publish redis notification to %q: %w", channel, err)
	}
	return nil
}

func isFinalAsynqAttempt(ctx context.Context) bool {
	retryCount, ok1 := asynq.GetRetryCount(ctx)
	maxRetry, ok2 := asynq.GetMaxRetry(ctx)
	if !ok1 || !ok2 {
		return false
	}
	return retryCount >= maxRetry
}
