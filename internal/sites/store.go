// Package sites 提供按 slug 寻址的作品集文档存储。
// 渲染核心不依赖本包，存储以接口形式注入到 HTTP 层和 worker。
package sites

import (
	"context"
	"errors"
	"time"

	"folioswift/internal/portfolio"
)

var (
	// ErrNotFound 表示指定 slug 下没有记录。
	ErrNotFound = errors.New("site not found")
	// ErrSlugTaken 表示 slug 已被占用。slug 全局唯一，
	// 该错误必须与其它失败可区分，上层据此提示用户换一个地址。
	ErrSlugTaken = errors.New("slug already taken")
)

// Record 是存储层返回的一条站点记录。
type Record struct {
	ID        uint
	Slug      string
	OwnerID   uint
	Document  portfolio.Document
	ExportURL string
	PdfURL    string
	Status    string
	UpdatedAt time.Time
}

// Store 是文档存储的抽象。
type Store interface {
	// Get 按 slug 读取一条记录，不存在返回 ErrNotFound。
	Get(ctx context.Context, slug string) (*Record, error)
	// GetByID 按主键读取，worker 的导出任务用它定位站点。
	GetByID(ctx context.Context, id uint) (*Record, error)
	// Save 保存文档。previousSlug 非空且不等于 slug 时执行改名：
	// 在一个事务里把 (previousSlug, ownerID) 对应的记录更新到新 slug，
	// 绝不盲目 upsert，避免新旧两个 slug 下同时存在记录。
	// slug 冲突返回 ErrSlugTaken。
	Save(ctx context.Context, slug string, doc portfolio.Document, ownerID uint, previousSlug string) (*Record, error)
	// ListByOwner 返回某用户的全部站点，更新时间倒序。
	ListByOwner(ctx context.Context, ownerID uint) ([]Record, error)
	// Delete 删除某用户名下的站点，不存在返回 ErrNotFound。
	Delete(ctx context.Context, slug string, ownerID uint) error
	// CountByOwner 返回某用户的站点数量，用于限额检查。
	CountByOwner(ctx context.Context, ownerID uint) (int64, error)
	// SetArtifacts 回写导出产物的地址和状态。
	SetArtifacts(ctx context.Context, id uint, exportURL, pdfURL, status string) error
}
