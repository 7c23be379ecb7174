package services

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/faizanyounusrcmemon-blip/madina-lights-backend/idgen"
	"github.com/faizanyounusrcmemon-blip/madina-lights-backend/repositories"
	"github.com/faizanyounusrcmemon-blip/madina-lights-backend/storage"
	"github.com/faizanyounusrcmemon-blip/madina-lights-backend/utils"
)

// TableStore is the slice of the relational store the backup pipeline
// needs: full-table reads for export and wholesale replace for restore.
type TableStore interface {
	FetchTable(table string) ([]string, [][]interface{}, error)
	ReplaceTable(table string, rows []map[string]interface{}) error
}

type BackupService struct {
	tables    []string
	repo      TableStore
	store     storage.BlobStore
	bucket    string
	retention int
}

func NewBackupService(repo TableStore, store storage.BlobStore, bucket string, retentionDays int) *BackupService {
	return &BackupService{
		tables:    repositories.BackupTables,
		repo:      repo,
		store:     store,
		bucket:    bucket,
		retention: retentionDays,
	}
}

// Create exports every backup table to CSV, zips the exports and
// uploads the bundle, overwriting any blob with the same name. Tables
// that fail to fetch or hold no rows are skipped and the backup
// carries on. Scratch files live in a uniquely named temp directory
// that is removed again whether or not the upload succeeds.
func (s *BackupService) Create(ctx context.Context) (string, error) {
	fileName := utils.BackupFileName(time.Now())

	scratch := filepath.Join(os.TempDir(), fmt.Sprintf("backup_%d", idgen.GenerateID()))
	if err := os.MkdirAll(scratch, 0o755); err != nil {
		return "", err
	}
	defer os.RemoveAll(scratch)

	var csvFiles []string
	for _, table := range s.tables {
		cols, rows, err := s.repo.FetchTable(table)
		if err != nil || len(rows) == 0 {
			continue
		}
		path := filepath.Join(scratch, table+".csv")
		if err := os.WriteFile(path, utils.BuildTable(cols, rows), 0o644); err != nil {
			return "", err
		}
		csvFiles = append(csvFiles, path)
	}

	zipPath := filepath.Join(scratch, fileName)
	if err := zipFiles(zipPath, csvFiles); err != nil {
		return "", err
	}

	data, err := os.ReadFile(zipPath)
	if err != nil {
		return "", err
	}

	if err := s.store.Upload(ctx, s.bucket, fileName, data, "application/zip"); err != nil {
		return "", err
	}
	return fileName, nil
}

// Restore downloads the named bundle and replaces table contents from
// it. mode "full" walks every backup table and silently skips tables
// whose file is absent from the bundle; mode "table" restores the one
// named table and errors when its file is missing. Restore is not
// transactional across tables: the returned list names the tables that
// were already replaced when an error stopped the run.
func (s *BackupService) Restore(ctx context.Context, fileName, mode, table string) ([]string, error) {
	data, err := s.store.Download(ctx, s.bucket, fileName)
	if err != nil {
		return nil, errors.New("Cannot download backup file")
	}

	scratch := filepath.Join(os.TempDir(), fmt.Sprintf("restore_%d", idgen.GenerateID()))
	if err := os.MkdirAll(scratch, 0o755); err != nil {
		return nil, err
	}
	defer os.RemoveAll(scratch)

	zipPath := filepath.Join(scratch, "bundle.zip")
	if err := os.WriteFile(zipPath, data, 0o644); err != nil {
		return nil, err
	}
	if err := extractZip(zipPath, scratch); err != nil {
		return nil, err
	}

	var attempted []string
	switch mode {
	case "full":
		for _, tbl := range s.tables {
			path := filepath.Join(scratch, tbl+".csv")
			if _, err := os.Stat(path); err != nil {
				continue
			}
			attempted = append(attempted, tbl)
			if err := s.restoreTable(tbl, path); err != nil {
				return attempted, err
			}
		}
	case "table":
		if table == "" {
			return nil, errors.New("Table not provided")
		}
		if !s.knownTable(table) {
			return nil, errors.New("Unknown table: " + table)
		}
		path := filepath.Join(scratch, table+".csv")
		if _, err := os.Stat(path); err != nil {
			return nil, errors.New("CSV not found in backup")
		}
		attempted = append(attempted, table)
		if err := s.restoreTable(table, path); err != nil {
			return attempted, err
		}
	default:
		return nil, errors.New("Invalid restore mode: " + mode)
	}

	return attempted, nil
}

func (s *BackupService) restoreTable(table, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return s.repo.ReplaceTable(table, utils.ParseTable(data))
}

func (s *BackupService) knownTable(table string) bool {
	for _, t := range s.tables {
		if t == table {
			return true
		}
	}
	return false
}

type BackupFile struct {
	Name string `json:"name"`
	Date string `json:"date"`
	Size int64  `json:"size"`
}

// List returns the stored bundles sorted by name descending, with the
// storage timestamp localized for display.
func (s *BackupService) List(ctx context.Context) ([]BackupFile, error) {
	objs, err := s.store.List(ctx, s.bucket)
	if err != nil {
		return nil, err
	}

	sort.Slice(objs, func(i, j int) bool { return objs[i].Name > objs[j].Name })

	files := make([]BackupFile, 0, len(objs))
	for _, obj := range objs {
		files = append(files, BackupFile{
			Name: obj.Name,
			Date: utils.LocalizedDate(obj.CreatedAt),
			Size: obj.Size,
		})
	}
	return files, nil
}

func (s *BackupService) Download(ctx context.Context, name string) ([]byte, error) {
	return s.store.Download(ctx, s.bucket, name)
}

func (s *BackupService) Delete(ctx context.Context, name string) error {
	return s.store.Remove(ctx, s.bucket, name)
}

// Cleanup removes bundles older than the retention window in one
// batch call and reports how many went.
func (s *BackupService) Cleanup(ctx context.Context) (int, error) {
	objs, err := s.store.List(ctx, s.bucket)
	if err != nil {
		return 0, err
	}

	stale := staleBackups(objs, time.Now(), s.retention)
	if len(stale) == 0 {
		return 0, nil
	}

	if err := s.store.RemoveMany(ctx, s.bucket, stale); err != nil {
		return 0, err
	}
	return len(stale), nil
}

// staleBackups picks blobs whose age in whole days strictly exceeds
// retentionDays. A blob exactly retentionDays old stays. Blobs without
// a timestamp are never selected.
func staleBackups(objs []storage.ObjectInfo, now time.Time, retentionDays int) []string {
	var names []string
	for _, obj := range objs {
		if obj.CreatedAt.IsZero() {
			continue
		}
		diffDays := int(now.Sub(obj.CreatedAt).Hours() / 24)
		if diffDays > retentionDays {
			names = append(names, obj.Name)
		}
	}
	return names
}

func zipFiles(zipPath string, files []string) error {
	out, err := os.Create(zipPath)
	if err != nil {
		return err
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	for _, file := range files {
		w, err := zw.Create(filepath.Base(file))
		if err != nil {
			return err
		}
		data, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		if _, err := w.Write(data); err != nil {
			return err
		}
	}
	return zw.Close()
}

func extractZip(zipPath, dest string) error {
	zr, err := zip.OpenReader(zipPath)
	if err != nil {
		return err
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return err
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return err
		}
		// zip entries are written flat, so only the base name is used
		if err := os.WriteFile(filepath.Join(dest, filepath.Base(f.Name)), data, 0o644); err != nil {
			return err
		}
	}
	return nil
}
