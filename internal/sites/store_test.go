package sites

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"folioswift/internal/database"
	"folioswift/internal/portfolio"
)

func newTestStore(t *testing.T) *GormStore {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&database.User{}, &database.Portfolio{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewGormStore(db)
}

func testDoc(name string) portfolio.Document {
	doc := portfolio.Default()
	doc.Name = name
	doc.Bio = "bio of " + name
	return doc
}

func TestSaveAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	saved, err := store.Save(ctx, "alice", testDoc("Alice"), 1, "")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.Slug != "alice" || saved.OwnerID != 1 {
		t.Errorf("saved record = %+v", saved)
	}

	got, err := store.Get(ctx, "alice")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Document.Name != "Alice" || got.Document.Bio != "bio of Alice" {
		t.Errorf("document round trip broken: %+v", got.Document)
	}
}

func TestGetNotFound(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.Get(context.Background(), "ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestSaveUpdatesExisting(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, err := store.Save(ctx, "alice", testDoc("Alice"), 1, ""); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := store.Save(ctx, "alice", testDoc("Alice v2"), 1, ""); err != nil {
		t.Fatalf("resave: %v", err)
	}

	got, err := store.Get(ctx, "alice")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Document.Name != "Alice v2" {
		t.Errorf("update lost: %q", got.Document.Name)
	}
	sites, err := store.ListByOwner(ctx, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(sites) != 1 {
		t.Errorf("expected exactly one record, got %d", len(sites))
	}
}

func TestSaveSlugConflict(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, err := store.Save(ctx, "taken", testDoc("Alice"), 1, ""); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := store.Save(ctx, "taken", testDoc("Bob"), 2, ""); !errors.Is(err, ErrSlugTaken) {
		t.Errorf("err = %v, want ErrSlugTaken", err)
	}
}

func TestRename(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, err := store.Save(ctx, "alice", testDoc("Alice"), 1, ""); err != nil {
		t.Fatalf("save: %v", err)
	}
	renamed, err := store.Save(ctx, "alice-dev", testDoc("Alice renamed"), 1, "alice")
	if err != nil {
		t.Fatalf("rename: %v", err)
	}
	if renamed.Slug != "alice-dev" {
		t.Errorf("slug = %q", renamed.Slug)
	}

	// 新 slug 下恰好一条记录，旧 slug 下零条。
	got, err := store.Get(ctx, "alice-dev")
	if err != nil {
		t.Fatalf("get new slug: %v", err)
	}
	if got.Document.Name != "Alice renamed" {
		t.Errorf("renamed content lost: %q", got.Document.Name)
	}
	if _, err := store.Get(ctx, "alice"); !errors.Is(err, ErrNotFound) {
		t.Errorf("old slug still resolves: %v", err)
	}
	sites, err := store.ListByOwner(ctx, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(sites) != 1 {
		t.Errorf("rename duplicated records: %d", len(sites))
	}
}

func TestRenameScopedToOwner(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, err := store.Save(ctx, "alice", testDoc("Alice"), 1, ""); err != nil {
		t.Fatalf("save: %v", err)
	}
	// 其他用户拿着别人的 previousSlug 改名必须失败。
	if _, err := store.Save(ctx, "stolen", testDoc("Eve"), 2, "alice"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if _, err := store.Get(ctx, "alice"); err != nil {
		t.Errorf("victim record disturbed: %v", err)
	}
}

func TestRenameToTakenSlug(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, err := store.Save(ctx, "alice", testDoc("Alice"), 1, ""); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := store.Save(ctx, "bob", testDoc("Bob"), 2, ""); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := store.Save(ctx, "bob", testDoc("Alice"), 1, "alice"); !errors.Is(err, ErrSlugTaken) {
		t.Errorf("err = %v, want ErrSlugTaken", err)
	}
}

func TestListByOwnerNewestFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, slug := range []string{"one", "two", "three"} {
		if _, err := store.Save(ctx, slug, testDoc(slug), 1, ""); err != nil {
			t.Fatalf("save %s: %v", slug, err)
		}
	}
	// 回头更新第一个，它应当排到最前面。
	if _, err := store.Save(ctx, "one", testDoc("one v2"), 1, ""); err != nil {
		t.Fatalf("resave: %v", err)
	}

	sites, err := store.ListByOwner(ctx, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(sites) != 3 {
		t.Fatalf("len = %d", len(sites))
	}
	if sites[0].Slug != "one" {
		t.Errorf("newest first violated: %v", sites[0].Slug)
	}
	for i := 1; i < len(sites); i++ {
		if sites[i-1].UpdatedAt.Before(sites[i].UpdatedAt) {
			t.Errorf("not sorted desc at %d", i)
		}
	}
}

func TestDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, err := store.Save(ctx, "alice", testDoc("Alice"), 1, ""); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Delete(ctx, "alice", 2); !errors.Is(err, ErrNotFound) {
		t.Errorf("cross-owner delete err = %v, want ErrNotFound", err)
	}
	if err := store.Delete(ctx, "alice", 1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(ctx, "alice"); !errors.Is(err, ErrNotFound) {
		t.Errorf("record survived delete: %v", err)
	}
}

func TestCountByOwner(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, slug := range []string{"a", "b"} {
		if _, err := store.Save(ctx, slug, testDoc(slug), 1, ""); err != nil {
			t.Fatalf("save: %v", err)
		}
	}
	n, err := store.CountByOwner(ctx, 1)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Errorf("count = %d, want 2", n)
	}
}

func TestSetArtifacts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	saved, err := store.Save(ctx, "alice", testDoc("Alice"), 1, "")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.SetArtifacts(ctx, saved.ID, "https://cdn/x.html", "https://cdn/x.pdf", "exported"); err != nil {
		t.Fatalf("set artifacts: %v", err)
	}
	got, err := store.GetByID(ctx, saved.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if got.ExportURL != "https://cdn/x.html" || got.PdfURL != "https://cdn/x.pdf" || got.Status != "exported" {
		t.Errorf("artifacts not persisted: %+v", got)
	}
}

func TestSaveLoadRenderEquivalence(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	doc := testDoc("Alice")
	doc.Projects = []portfolio.Project{{Title: "P1", Description: "d"}}
	doc.SectionOrder = []portfolio.SectionID{portfolio.SectionProjects, portfolio.SectionAbout}

	if _, err := store.Save(ctx, "alice", doc, 1, ""); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := store.Get(ctx, "alice")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(loaded.Document.SectionOrder) != 2 {
		t.Errorf("section order not preserved: %v", loaded.Document.SectionOrder)
	}
	if loaded.Document.Projects[0].Title != "P1" {
		t.Errorf("projects lost: %+v", loaded.Document.Projects)
	}
}
