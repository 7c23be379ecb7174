package services

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"

	"github.com/faizanyounusrcmemon-blip/madina-lights-backend/repositories"
	"github.com/faizanyounusrcmemon-blip/madina-lights-backend/storage"
	"github.com/faizanyounusrcmemon-blip/madina-lights-backend/utils"
)

type ArchiveService struct {
	repo   *repositories.ArchiveRepository
	store  storage.BlobStore
	bucket string
}

func NewArchiveService(repo *repositories.ArchiveRepository, store storage.BlobStore, bucket string) *ArchiveService {
	return &ArchiveService{repo: repo, store: store, bucket: bucket}
}

// Bundle zips the raw purchase, sale and return rows of the range as
// JSON files, uploads the zip to the archive bucket (overwriting a
// same-named blob) and returns the bytes so the handler can stream the
// same bundle back to the caller.
func (s *ArchiveService) Bundle(ctx context.Context, startDate, endDate string) (string, []byte, error) {
	purchases, err := s.repo.RangeRows("purchases", "purchase_date", startDate, endDate)
	if err != nil {
		return "", nil, err
	}
	sales, err := s.repo.RangeRows("sales", "sale_date", startDate, endDate)
	if err != nil {
		return "", nil, err
	}
	returns, err := s.repo.RangeRows("sale_returns", "created_at::date", startDate, endDate)
	if err != nil {
		return "", nil, err
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	entries := []struct {
		name string
		rows []map[string]interface{}
	}{
		{"purchases.json", purchases},
		{"sales.json", sales},
		{"returns.json", returns},
	}
	for _, entry := range entries {
		w, err := zw.Create(entry.name)
		if err != nil {
			return "", nil, err
		}
		rows := entry.rows
		if rows == nil {
			rows = []map[string]interface{}{}
		}
		data, err := json.Marshal(rows)
		if err != nil {
			return "", nil, err
		}
		if _, err := w.Write(data); err != nil {
			return "", nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return "", nil, err
	}

	fileName := utils.ArchiveFileName(startDate, endDate)
	if err := s.store.Upload(ctx, s.bucket, fileName, buf.Bytes(), "application/zip"); err != nil {
		return "", nil, err
	}

	return fileName, buf.Bytes(), nil
}
