package api

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dutchcoders/go-clamd"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"folioswift/internal/database"
)

// assetStorage 是资产上传所需的对象存储能力子集，便于测试替换。
type assetStorage interface {
	UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (*minio.UploadInfo, error)
	GeneratePresignedURL(ctx context.Context, objectKey string, duration time.Duration) (string, error)
	DeleteObject(ctx context.Context, objectKey string) error
}

// assetStore 管理资产元数据。
type assetStore interface {
	Create(ctx context.Context, asset database.Asset) error
	ListByUser(ctx context.Context, userID uint, limit int) ([]database.Asset, error)
	CountByUser(ctx context.Context, userID uint) (int64, error)
	Delete(ctx context.Context, userID uint, objectKey string) error
}

type gormAssetStore struct {
	db *gorm.DB
}

func newGormAssetStore(db *gorm.DB) *gormAssetStore {
	return &gormAssetStore{db: db}
}

func (s *gormAssetStore) Create(ctx context.Context, asset database.Asset) error {
	return s.db.WithContext(ctx).Create(&asset).Error
}

func (s *gormAssetStore) ListByUser(ctx context.Context, userID uint, limit int) ([]database.Asset, error) {
	var assets []database.Asset
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&assets).Error
	return assets, err
}

func (s *gormAssetStore) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).
		Model(&database.Asset{}).
		Where("user_id = ?", userID).
		Count(&n).Error
	return n, err
}

func (s *gormAssetStore) Delete(ctx context.Context, userID uint, objectKey string) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND object_key = ?", userID, objectKey).
		Delete(&database.Asset{}).Error
}

// AssetHandler 负责处理资产上传与访问。
type AssetHandler struct {
	store            assetStore
	Storage          assetStorage
	Logger           *slog.Logger
	ClamdAddr        string
	MaxBytes         int64
	MIMEWhitelist    []string
	RedisClient      *redis.Client
	maxAssetsPerUser int
	maxUploadsPerDay int
}

// NewAssetHandler 返回带默认限制的 AssetHandler 实例。
func NewAssetHandler(db *gorm.DB, storageClient assetStorage, redisClient *redis.Client, logger *slog.Logger, clamdAddr string) *AssetHandler {
	return &AssetHandler{
		store:            newGormAssetStore(db),
		Storage:          storageClient,
		Logger:           logger,
		ClamdAddr:        clamdAddr,
		MaxBytes:         5 * 1024 * 1024,
		MIMEWhitelist:    []string{"image/png", "image/jpeg", "image/webp"},
		RedisClient:      redisClient,
		maxAssetsPerUser: 100,
		maxUploadsPerDay: 50,
	}
}

func (h *AssetHandler) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// UploadAsset 处理受保护的图片上传。
// 限额与频率检查在读取文件内容之前完成，病毒扫描仅在配置了 clamd 时进行。
func (h *AssetHandler) UploadAsset(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		BadRequest(c, "missing file")
		return
	}

	ctx := c.Request.Context()

	if h.maxAssetsPerUser > 0 {
		count, err := h.store.CountByUser(ctx, userID)
		if err != nil {
			h.logger().Error("count assets", slog.String("error", err.Error()))
			Internal(c, "failed to count assets")
			return
		}
		if count >= int64(h.maxAssetsPerUser) {
			Forbidden(c, "asset limit reached")
			return
		}
	}

	if h.maxUploadsPerDay > 0 && h.RedisClient != nil {
		key := fmt.Sprintf("asset_upload_rate:%d", userID)
		count, err := incrWithTTL(ctx, h.RedisClient, key, 24*time.Hour)
		if err != nil {
			// Redis 故障时放行，限额仍由数据库计数兜底。
			h.logger().Warn("asset upload rate check failed", slog.String("error", err.Error()))
		} else if count > int64(h.maxUploadsPerDay) {
			Error(c, http.StatusTooManyRequests, "too many uploads today")
			return
		}
	}

	if h.MaxBytes > 0 && file.Size > h.MaxBytes {
		Error(c, http.StatusRequestEntityTooLarge, "file too large")
		return
	}

	fileReader, err := file.Open()
	if err != nil {
		Internal(c, "failed to open file")
		return
	}

	head := make([]byte, 512)
	n, err := io.ReadFull(fileReader, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		fileReader.Close()
		Internal(c, "failed to read file")
		return
	}
	contentType := http.DetectContentType(head[:n])
	if !h.mimeAllowed(contentType) {
		fileReader.Close()
		BadRequest(c, "unsupported file type")
		return
	}

	if h.ClamdAddr != "" {
		if ok := h.scanClean(c, fileReader); !ok {
			fileReader.Close()
			return
		}
	}
	fileReader.Close()

	fileReader, err = file.Open()
	if err != nil {
		Internal(c, "failed to reopen file")
		return
	}
	defer fileReader.Close()

	ext := extensionForMIME(contentType)
	objectKey := fmt.Sprintf("user-assets/%d/%s%s", userID, uuid.NewString(), ext)

	if _, err := h.Storage.UploadFile(ctx, objectKey, fileReader, file.Size, contentType); err != nil {
		h.logger().Error("upload file", slog.String("error", err.Error()))
		Internal(c, "failed to upload file")
		return
	}

	asset := database.Asset{
		UserID:    userID,
		ObjectKey: objectKey,
		MimeType:  contentType,
		SizeBytes: file.Size,
	}
	if err := h.store.Create(ctx, asset); err != nil {
		h.logger().Error("record asset", slog.String("error", err.Error()))
		if delErr := h.Storage.DeleteObject(ctx, objectKey); delErr != nil {
			h.logger().Error("rollback asset object", slog.String("error", delErr.Error()))
		}
		Internal(c, "failed to record asset")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"objectKey": objectKey})
}

func (h *AssetHandler) mimeAllowed(contentType string) bool {
	for _, allowed := range h.MIMEWhitelist {
		if strings.EqualFold(contentType, allowed) {
			return true
		}
	}
	return false
}

func extensionForMIME(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ".png"
	}
}

// scanClean 通过 clamd 扫描内容，返回 false 时已写好响应。
func (h *AssetHandler) scanClean(c *gin.Context, reader io.Reader) bool {
	clamdClient := clamd.NewClamd(h.ClamdAddr)

	abortChan := make(chan bool)
	scanChan, err := clamdClient.ScanStream(reader, abortChan)
	if err != nil {
		h.logger().Error("scan file", slog.String("error", err.Error()))
		Internal(c, "failed to scan file")
		return false
	}
	defer close(abortChan)

	for result := range scanChan {
		if result.Status != clamd.RES_OK {
			BadRequest(c, "malicious file detected")
			return false
		}
	}
	return true
}

// ListAssets 列出用户上传的资产及其临时预览链接。
func (h *AssetHandler) ListAssets(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	limit := 60
	assets, err := h.store.ListByUser(c.Request.Context(), userID, limit)
	if err != nil {
		h.logger().Error("list assets", slog.String("error", err.Error()))
		Internal(c, "failed to list assets")
		return
	}

	items := make([]gin.H, 0, len(assets))
	for _, asset := range assets {
		url, err := h.Storage.GeneratePresignedURL(c.Request.Context(), asset.ObjectKey, 10*time.Minute)
		if err != nil {
			h.logger().Error("generate asset url", slog.String("objectKey", asset.ObjectKey), slog.String("error", err.Error()))
			continue
		}
		items = append(items, gin.H{
			"objectKey":  asset.ObjectKey,
			"previewUrl": url,
			"size":       asset.SizeBytes,
			"mimeType":   asset.MimeType,
			"createdAt":  asset.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// GetAssetURL 返回资产的临时预签名 URL。
func (h *AssetHandler) GetAssetURL(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	objectKey := c.Query("key")
	if objectKey == "" {
		BadRequest(c, "missing key")
		return
	}

	if !isValidUserAssetObjectKey(userID, objectKey) {
		Forbidden(c, "access denied")
		return
	}

	signedURL, err := h.Storage.GeneratePresignedURL(c.Request.Context(), objectKey, 15*time.Minute)
	if err != nil {
		h.logger().Error("generate presigned url", slog.String("error", err.Error()))
		Internal(c, "failed to generate url")
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": signedURL})
}

// DeleteAsset 删除资产记录及其底层对象。
func (h *AssetHandler) DeleteAsset(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	objectKey := c.Query("key")
	if objectKey == "" {
		BadRequest(c, "missing key")
		return
	}
	if !isValidUserAssetObjectKey(userID, objectKey) {
		Forbidden(c, "access denied")
		return
	}

	ctx := c.Request.Context()
	if err := h.store.Delete(ctx, userID, objectKey); err != nil {
		h.logger().Error("delete asset record", slog.String("error", err.Error()))
		Internal(c, "failed to delete asset")
		return
	}
	if err := h.Storage.DeleteObject(ctx, objectKey); err != nil {
		h.logger().Error("delete asset object", slog.String("error", err.Error()))
		Internal(c, "failed to delete asset")
		return
	}

	c.Status(http.StatusNoContent)
}
