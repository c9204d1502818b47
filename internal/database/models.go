package database

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// User 表示系统中的账号信息。
type User struct {
	gorm.Model
	Username           string      `gorm:"uniqueIndex;size:64"`
	PasswordHash       string      `gorm:"size:255"`
	MustChangePassword bool        `gorm:"default:false"`
	Portfolios         []Portfolio `gorm:"constraint:OnDelete:CASCADE"`
}

// Portfolio 表示一个已发布的作品集站点。
// Data 以 JSONB 存储完整的 portfolio.Document；Slug 全局唯一。
type Portfolio struct {
	gorm.Model
	Slug            string         `gorm:"uniqueIndex;size:128"`
	Data            datatypes.JSON `gorm:"type:jsonb"`
	UserID          uint           `gorm:"index"`
	User            User           `gorm:"constraint:OnDelete:CASCADE"`
	ExportURL       string         `gorm:"size:512"`
	PdfURL          string         `gorm:"size:512"`
	PreviewImageURL string         `gorm:"size:512"`
	Status          string         `gorm:"size:32"`
}

// Asset 记录用户上传的图片等对象，ObjectKey 指向 MinIO 中的存储位置。
type Asset struct {
	gorm.Model
	UserID    uint   `gorm:"index"`
	User      User   `gorm:"constraint:OnDelete:CASCADE"`
	ObjectKey string `gorm:"uniqueIndex;size:512"`
	MimeType  string `gorm:"size:128"`
	SizeBytes int64
}
