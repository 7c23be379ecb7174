package repositories

import (
	"github.com/faizanyounusrcmemon-blip/madina-lights-backend/models"

	"gorm.io/gorm"
)

type SnapshotRepository struct {
	db *gorm.DB
}

func NewSnapshotRepository(db *gorm.DB) *SnapshotRepository {
	return &SnapshotRepository{db}
}

type SnapshotRow struct {
	Barcode  string `json:"barcode"`
	ItemName string `json:"item_name"`
	StockQty int    `json:"stock_qty"`
}

// stockSnapshotSQL reconstructs quantity-on-hand per barcode as of a
// given date: the latest persisted snapshot at or before that date is
// the base (epoch 1900-01-01 and base 0 when none exists), then
// non-deleted purchases and sales plus sale returns dated strictly
// after the snapshot and up to the query date are folded on top.
// Every join leg is coalesced to 0 so a missing side never null-
// propagates into the arithmetic. The query date parameter repeats
// four times.
const stockSnapshotSQL = `
WITH last_snap AS (
  SELECT MAX(snap_date) AS snap_date
  FROM stock_snapshots
  WHERE snap_date <= ?
),
base AS (
  SELECT
    i.barcode::text AS barcode,
    i.item_name,
    COALESCE(s.stock_qty, 0) AS base_qty
  FROM items i
  LEFT JOIN stock_snapshots s
    ON s.barcode::text = i.barcode::text
   AND s.snap_date = (SELECT snap_date FROM last_snap)
),
pur AS (
  SELECT barcode::text, SUM(qty) AS total_purchase
  FROM purchases, last_snap
  WHERE purchase_date > COALESCE(last_snap.snap_date, '1900-01-01')
    AND purchase_date <= ?
    AND is_deleted = FALSE
  GROUP BY barcode::text
),
sal AS (
  SELECT barcode::text, SUM(qty) AS total_sale
  FROM sales, last_snap
  WHERE sale_date > COALESCE(last_snap.snap_date, '1900-01-01')
    AND sale_date <= ?
    AND is_deleted = FALSE
  GROUP BY barcode::text
),
ret AS (
  SELECT barcode::text, SUM(return_qty) AS total_return
  FROM sale_returns, last_snap
  WHERE created_at::date > COALESCE(last_snap.snap_date, '1900-01-01')
    AND created_at::date <= ?
  GROUP BY barcode::text
)
SELECT
  b.barcode,
  b.item_name,
  b.base_qty
  + COALESCE(pur.total_purchase, 0)
  - COALESCE(sal.total_sale, 0)
  + COALESCE(ret.total_return, 0) AS stock_qty
FROM base b
LEFT JOIN pur ON pur.barcode = b.barcode
LEFT JOIN sal ON sal.barcode = b.barcode
LEFT JOIN ret ON ret.barcode = b.barcode
`

// Preview computes the nonzero stock rows as of endDate without
// persisting anything. Read-only, safe to repeat.
func (r *SnapshotRepository) Preview(endDate string) ([]SnapshotRow, error) {
	sql := `
		SELECT q.barcode, q.item_name, q.stock_qty
		FROM (` + stockSnapshotSQL + `) q
		WHERE q.stock_qty <> 0
	`

	var rows []SnapshotRow
	if err := r.db.Raw(sql, endDate, endDate, endDate, endDate).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Create persists the nonzero stock rows as a new snapshot dated
// endDate and appends one snapshot_logs entry. Inserts are append-only:
// running Create twice for the same endDate stores two independent row
// sets for that date, which the reconstruction would double-count, so
// operators must check History before re-running.
func (r *SnapshotRepository) Create(startDate, endDate string) (int64, error) {
	sqlInsert := `
		INSERT INTO stock_snapshots (snap_date, barcode, item_name, stock_qty)
		SELECT
			?::date AS snap_date,
			q.barcode,
			q.item_name,
			q.stock_qty
		FROM (` + stockSnapshotSQL + `) q
		WHERE q.stock_qty <> 0
	`

	result := r.db.Exec(sqlInsert, endDate, endDate, endDate, endDate, endDate)
	if result.Error != nil {
		return 0, result.Error
	}
	inserted := result.RowsAffected

	logInsert := `
		INSERT INTO snapshot_logs (from_date, to_date, items_inserted, created_at)
		VALUES (?, ?, ?, NOW())
	`
	if err := r.db.Exec(logInsert, startDate, endDate, inserted).Error; err != nil {
		return inserted, err
	}

	return inserted, nil
}

// History lists snapshot-create runs, newest first.
func (r *SnapshotRepository) History() ([]models.SnapshotLog, error) {
	var logs []models.SnapshotLog
	sql := `
		SELECT id, from_date, to_date, items_inserted, created_at
		FROM snapshot_logs
		ORDER BY id DESC
	`
	if err := r.db.Raw(sql).Scan(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
