package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/faizanyounusrcmemon-blip/madina-lights-backend/idgen"
	"github.com/faizanyounusrcmemon-blip/madina-lights-backend/storage"
)

func init() {
	idgen.Init()
}

type fakeTableStore struct {
	tables   map[string][][]interface{}
	cols     map[string][]string
	replaced map[string][]map[string]interface{}
}

func newFakeTableStore() *fakeTableStore {
	return &fakeTableStore{
		tables:   map[string][][]interface{}{},
		cols:     map[string][]string{},
		replaced: map[string][]map[string]interface{}{},
	}
}

func (f *fakeTableStore) FetchTable(table string) ([]string, [][]interface{}, error) {
	rows, ok := f.tables[table]
	if !ok {
		return nil, nil, errors.New("relation does not exist")
	}
	return f.cols[table], rows, nil
}

func (f *fakeTableStore) ReplaceTable(table string, rows []map[string]interface{}) error {
	f.replaced[table] = rows
	return nil
}

type fakeBlobStore struct {
	objects map[string][]byte
	created map[string]time.Time
	removed []string
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{objects: map[string][]byte{}, created: map[string]time.Time{}}
}

func (f *fakeBlobStore) Upload(_ context.Context, _, name string, data []byte, _ string) error {
	f.objects[name] = data
	f.created[name] = time.Now()
	return nil
}

func (f *fakeBlobStore) Download(_ context.Context, _, name string) ([]byte, error) {
	data, ok := f.objects[name]
	if !ok {
		return nil, errors.New("object not found")
	}
	return data, nil
}

func (f *fakeBlobStore) List(_ context.Context, _ string) ([]storage.ObjectInfo, error) {
	var out []storage.ObjectInfo
	for name, data := range f.objects {
		out = append(out, storage.ObjectInfo{Name: name, CreatedAt: f.created[name], Size: int64(len(data))})
	}
	return out, nil
}

func (f *fakeBlobStore) Remove(_ context.Context, _, name string) error {
	delete(f.objects, name)
	f.removed = append(f.removed, name)
	return nil
}

func (f *fakeBlobStore) RemoveMany(ctx context.Context, bucket string, names []string) error {
	for _, name := range names {
		f.Remove(ctx, bucket, name)
	}
	return nil
}

func TestBackupRestoreRoundTrip(t *testing.T) {
	repo := newFakeTableStore()
	repo.cols["items"] = []string{"id", "barcode", "item_name", "purchase_price"}
	repo.tables["items"] = [][]interface{}{
		{int64(1), "8964000011", "Bulb 12W", "150.00"},
		{int64(2), "8964000022", "Fan 56in", nil},
	}
	repo.cols["sales"] = []string{"id", "barcode", "qty"}
	repo.tables["sales"] = [][]interface{}{
		{int64(1), "8964000011", int64(3)},
	}

	store := newFakeBlobStore()
	svc := NewBackupService(repo, store, "mlbackups", 60)

	fileName, err := svc.Create(context.Background())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if !strings.HasPrefix(fileName, "backup_") || !strings.HasSuffix(fileName, ".zip") {
		t.Errorf("unexpected bundle name: %s", fileName)
	}
	if _, ok := store.objects[fileName]; !ok {
		t.Fatalf("bundle %s not uploaded", fileName)
	}

	attempted, err := svc.Restore(context.Background(), fileName, "full", "")
	if err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	// only the two exported tables are in the bundle; the rest are
	// skipped silently
	if len(attempted) != 2 {
		t.Fatalf("expected 2 attempted tables, got %v", attempted)
	}

	items := repo.replaced["items"]
	if len(items) != 2 {
		t.Fatalf("expected 2 restored item rows, got %d", len(items))
	}
	if items[0]["barcode"] != "8964000011" || items[0]["purchase_price"] != "150.00" {
		t.Errorf("unexpected restored row: %v", items[0])
	}
	if items[1]["purchase_price"] != nil {
		t.Errorf("expected nil purchase_price after round-trip, got %v", items[1]["purchase_price"])
	}
}

func TestRestoreSingleTable(t *testing.T) {
	repo := newFakeTableStore()
	repo.cols["items"] = []string{"id", "barcode"}
	repo.tables["items"] = [][]interface{}{{int64(1), "8964000011"}}

	store := newFakeBlobStore()
	svc := NewBackupService(repo, store, "mlbackups", 60)

	fileName, err := svc.Create(context.Background())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	t.Run("table present", func(t *testing.T) {
		attempted, err := svc.Restore(context.Background(), fileName, "table", "items")
		if err != nil {
			t.Fatalf("Restore failed: %v", err)
		}
		if len(attempted) != 1 || attempted[0] != "items" {
			t.Errorf("unexpected attempted list: %v", attempted)
		}
	})

	t.Run("table file absent errors", func(t *testing.T) {
		if _, err := svc.Restore(context.Background(), fileName, "table", "sales"); err == nil {
			t.Error("expected error for table missing from bundle")
		}
	})

	t.Run("table name required", func(t *testing.T) {
		if _, err := svc.Restore(context.Background(), fileName, "table", ""); err == nil {
			t.Error("expected error for empty table name")
		}
	})

	t.Run("unknown table rejected", func(t *testing.T) {
		if _, err := svc.Restore(context.Background(), fileName, "table", "pg_catalog.pg_tables"); err == nil {
			t.Error("expected error for table outside the backup list")
		}
	})

	t.Run("missing bundle", func(t *testing.T) {
		if _, err := svc.Restore(context.Background(), "backup_nope.zip", "full", ""); err == nil {
			t.Error("expected error for missing bundle")
		}
	})
}

func TestStaleBackups(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	objs := []storage.ObjectInfo{
		{Name: "backup_young.zip", CreatedAt: now.AddDate(0, 0, -10)},
		{Name: "backup_boundary.zip", CreatedAt: now.AddDate(0, 0, -60)},
		{Name: "backup_old.zip", CreatedAt: now.AddDate(0, 0, -61)},
		{Name: "backup_ancient.zip", CreatedAt: now.AddDate(0, 0, -90)},
		{Name: "backup_unknown.zip"},
	}

	stale := staleBackups(objs, now, 60)

	if len(stale) != 2 {
		t.Fatalf("expected 2 stale backups, got %v", stale)
	}
	if stale[0] != "backup_old.zip" || stale[1] != "backup_ancient.zip" {
		t.Errorf("unexpected stale set: %v", stale)
	}
}

func TestCleanup(t *testing.T) {
	repo := newFakeTableStore()
	store := newFakeBlobStore()
	svc := NewBackupService(repo, store, "mlbackups", 60)

	t.Run("nothing eligible", func(t *testing.T) {
		deleted, err := svc.Cleanup(context.Background())
		if err != nil {
			t.Fatalf("Cleanup failed: %v", err)
		}
		if deleted != 0 {
			t.Errorf("expected 0 deletions, got %d", deleted)
		}
	})

	t.Run("old bundles removed", func(t *testing.T) {
		store.objects["backup_old.zip"] = []byte("zip")
		store.created["backup_old.zip"] = time.Now().AddDate(0, 0, -90)
		store.objects["backup_new.zip"] = []byte("zip")
		store.created["backup_new.zip"] = time.Now()

		deleted, err := svc.Cleanup(context.Background())
		if err != nil {
			t.Fatalf("Cleanup failed: %v", err)
		}
		if deleted != 1 {
			t.Errorf("expected 1 deletion, got %d", deleted)
		}
		if _, ok := store.objects["backup_new.zip"]; !ok {
			t.Error("recent bundle must survive cleanup")
		}
	})
}

func TestListSortsByNameDescending(t *testing.T) {
	repo := newFakeTableStore()
	store := newFakeBlobStore()
	store.objects["backup_2024-01-01_02-00-00.zip"] = []byte("a")
	store.created["backup_2024-01-01_02-00-00.zip"] = time.Now()
	store.objects["backup_2024-03-01_02-00-00.zip"] = []byte("bb")
	store.created["backup_2024-03-01_02-00-00.zip"] = time.Now()

	svc := NewBackupService(repo, store, "mlbackups", 60)

	files, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(files))
	}
	if files[0].Name != "backup_2024-03-01_02-00-00.zip" {
		t.Errorf("expected newest name first, got %s", files[0].Name)
	}
	if files[1].Size != 1 {
		t.Errorf("expected size 1, got %d", files[1].Size)
	}
}
