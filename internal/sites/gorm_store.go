package sites

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"folioswift/internal/database"
	"folioswift/internal/portfolio"
)

// GormStore 是 Store 的 GORM 实现。
type GormStore struct {
	db *gorm.DB
}

// NewGormStore 创建基于 GORM 的站点存储。
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func toRecord(m *database.Portfolio) (*Record, error) {
	var doc portfolio.Document
	if len(m.Data) > 0 {
		if err := json.Unmarshal(m.Data, &doc); err != nil {
			return nil, fmt.Errorf("decode site document: %w", err)
		}
	}
	return &Record{
		ID:        m.ID,
		Slug:      m.Slug,
		OwnerID:   m.UserID,
		Document:  doc,
		ExportURL: m.ExportURL,
		PdfURL:    m.PdfURL,
		Status:    m.Status,
		UpdatedAt: m.UpdatedAt,
	}, nil
}

// Get 按 slug 读取一条记录。
func (s *GormStore) Get(ctx context.Context, slug string) (*Record, error) {
	var m database.Portfolio
	err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query site %q: %w", slug, err)
	}
	return toRecord(&m)
}

// GetByID 按主键读取一条记录。
func (s *GormStore) GetByID(ctx context.Context, id uint) (*Record, error) {
	var m database.Portfolio
	err := s.db.WithContext(ctx).First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query site id %d: %w", id, err)
	}
	return toRecord(&m)
}

// Save 保存文档，必要时在事务里完成改名。
func (s *GormStore) Save(ctx context.Context, slug string, doc portfolio.Document, ownerID uint, previousSlug string) (*Record, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode site document: %w", err)
	}
	data := datatypes.JSON(raw)

	if previousSlug != "" && previousSlug != slug {
		return s.rename(ctx, slug, previousSlug, ownerID, data)
	}

	var out *Record
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing database.Portfolio
		err := tx.Where("slug = ?", slug).First(&existing).Error
		switch {
		case err == nil:
			if existing.UserID != ownerID {
				return ErrSlugTaken
			}
			existing.Data = data
			if err := tx.Save(&existing).Error; err != nil {
				return fmt.Errorf("update site %q: %w", slug, err)
			}
			out, err = toRecord(&existing)
			return err
		case errors.Is(err, gorm.ErrRecordNotFound):
			m := database.Portfolio{Slug: slug, Data: data, UserID: ownerID, Status: "draft"}
			if err := tx.Create(&m).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return ErrSlugTaken
				}
				return fmt.Errorf("create site %q: %w", slug, err)
			}
			out, err = toRecord(&m)
			return err
		default:
			return fmt.Errorf("query site %q: %w", slug, err)
		}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// rename 把 (previousSlug, ownerID) 的记录原子地改到新 slug 并更新内容。
func (s *GormStore) rename(ctx context.Context, slug, previousSlug string, ownerID uint, data datatypes.JSON) (*Record, error) {
	var out *Record
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&database.Portfolio{}).
			Where("slug = ? AND user_id = ?", previousSlug, ownerID).
			Updates(map[string]any{"slug": slug, "data": data})
		if res.Error != nil {
			if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
				return ErrSlugTaken
			}
			return fmt.Errorf("rename site %q -> %q: %w", previousSlug, slug, res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		var m database.Portfolio
		if err := tx.Where("slug = ?", slug).First(&m).Error; err != nil {
			return fmt.Errorf("reload renamed site %q: %w", slug, err)
		}
		var err error
		out, err = toRecord(&m)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListByOwner 返回某用户的全部站点，更新时间倒序。
func (s *GormStore) ListByOwner(ctx context.Context, ownerID uint) ([]Record, error) {
	var ms []database.Portfolio
	err := s.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("updated_at DESC").
		Find(&ms).Error
	if err != nil {
		return nil, fmt.Errorf("list sites for user %d: %w", ownerID, err)
	}
	out := make([]Record, 0, len(ms))
	for i := range ms {
		r, err := toRecord(&ms[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *r)
	}
	return out, nil
}

// Delete 删除某用户名下的站点。
func (s *GormStore) Delete(ctx context.Context, slug string, ownerID uint) error {
	res := s.db.WithContext(ctx).
		Where("slug = ? AND user_id = ?", slug, ownerID).
		Delete(&database.Portfolio{})
	if res.Error != nil {
		return fmt.Errorf("delete site %q: %w", slug, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CountByOwner 返回某用户的站点数量。
func (s *GormStore) CountByOwner(ctx context.Context, ownerID uint) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).
		Model(&database.Portfolio{}).
		Where("user_id = ?", ownerID).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("count sites for user %d: %w", ownerID, err)
	}
	return n, nil
}

// SetArtifacts 回写导出产物地址和状态。
func (s *GormStore) SetArtifacts(ctx context.Context, id uint, exportURL, pdfURL, status string) error {
	updates := map[string]any{"status": status}
	if exportURL != "" {
		updates["export_url"] = exportURL
	}
	if pdfURL != "" {
		updates["pdf_url"] = pdfURL
	}
	err := s.db.WithContext(ctx).
		Model(&database.Portfolio{}).
		Where("id = ?", id).
		Updates(updates).Error
	if err != nil {
		return fmt.Errorf("update site %d artifacts: %w", id, err)
	}
	return nil
}
