package repositories

import (
	"gorm.io/gorm"
)

type ArchiveRepository struct {
	db *gorm.DB
}

func NewArchiveRepository(db *gorm.DB) *ArchiveRepository {
	return &ArchiveRepository{db}
}

type ArchivePreviewRow struct {
	Barcode     string `json:"barcode"`
	ItemName    string `json:"item_name"`
	PurchaseQty int    `json:"purchase_qty"`
	SaleQty     int    `json:"sale_qty"`
	ReturnQty   int    `json:"return_qty"`
}

// Preview aggregates non-deleted purchases and sales plus returns over
// the inclusive date range, one row per barcode, ordered by barcode.
func (r *ArchiveRepository) Preview(startDate, endDate string) ([]ArchivePreviewRow, error) {
	sql := `
		SELECT
			barcode::text AS barcode,
			item_name,
			SUM(purchase_qty) AS purchase_qty,
			SUM(sale_qty) AS sale_qty,
			SUM(return_qty) AS return_qty
		FROM (
			SELECT barcode::text, item_name, qty AS purchase_qty, 0 AS sale_qty, 0 AS return_qty
			FROM purchases
			WHERE is_deleted = FALSE AND purchase_date BETWEEN ? AND ?
			UNION ALL
			SELECT barcode::text, item_name, 0, qty, 0
			FROM sales
			WHERE is_deleted = FALSE AND sale_date BETWEEN ? AND ?
			UNION ALL
			SELECT barcode::text, item_name, 0, 0, return_qty
			FROM sale_returns
			WHERE created_at::date BETWEEN ? AND ?
		) t
		GROUP BY barcode, item_name
		ORDER BY barcode
	`

	var rows []ArchivePreviewRow
	err := r.db.Raw(sql, startDate, endDate, startDate, endDate, startDate, endDate).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Transfer materializes the per-barcode range summary into the archive
// table. Only barcodes with activity in the range produce a row; the
// row date is the greatest contributing event date, with the epoch
// sentinel standing in for sources that had no rows. Transfer never
// deletes the source rows: callers archive first and then invoke
// DeleteRange for the same range.
func (r *ArchiveRepository) Transfer(startDate, endDate string) (int64, error) {
	sql := `
		INSERT INTO archive (barcode, item_name, purchase_qty, sale_qty, return_qty, date, created_at)
		SELECT
			i.barcode,
			i.item_name,
			COALESCE(p.purchase_qty, 0),
			COALESCE(s.sale_qty, 0),
			COALESCE(r.return_qty, 0),
			GREATEST(
				COALESCE(p.last_purchase, '1900-01-01'),
				COALESCE(s.last_sale, '1900-01-01'),
				COALESCE(r.last_return, '1900-01-01')
			) AS date,
			NOW()
		FROM items i

		LEFT JOIN (
			SELECT barcode, SUM(qty) AS purchase_qty, MAX(purchase_date) AS last_purchase
			FROM purchases
			WHERE purchase_date BETWEEN ? AND ?
			GROUP BY barcode
		) p ON p.barcode = i.barcode

		LEFT JOIN (
			SELECT barcode, SUM(qty) AS sale_qty, MAX(sale_date) AS last_sale
			FROM sales
			WHERE sale_date BETWEEN ? AND ?
			GROUP BY barcode
		) s ON s.barcode = i.barcode

		LEFT JOIN (
			SELECT barcode, SUM(return_qty) AS return_qty, MAX(created_at::date) AS last_return
			FROM sale_returns
			WHERE created_at::date BETWEEN ? AND ?
			GROUP BY barcode
		) r ON r.barcode = i.barcode

		WHERE
			COALESCE(p.purchase_qty, 0) +
			COALESCE(s.sale_qty, 0) +
			COALESCE(r.return_qty, 0) > 0
	`

	result := r.db.Exec(sql, startDate, endDate, startDate, endDate, startDate, endDate)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// DeleteRange unconditionally removes purchases, sales and sale
// returns in the inclusive range. It does not check snapshot dates or
// whether the range has been archived; run it only on ranges that a
// successful Transfer has already covered, or the rows are gone for
// good.
func (r *ArchiveRepository) DeleteRange(startDate, endDate string) error {
	if err := r.db.Exec(`DELETE FROM purchases WHERE purchase_date BETWEEN ? AND ?`, startDate, endDate).Error; err != nil {
		return err
	}
	if err := r.db.Exec(`DELETE FROM sales WHERE sale_date BETWEEN ? AND ?`, startDate, endDate).Error; err != nil {
		return err
	}
	if err := r.db.Exec(`DELETE FROM sale_returns WHERE created_at::date BETWEEN ? AND ?`, startDate, endDate).Error; err != nil {
		return err
	}
	return nil
}

// RangeRows fetches the raw ledger rows of one source table for the
// archive bundle. dateColumn is one of purchase_date, sale_date or
// created_at::date, fixed by the callers.
func (r *ArchiveRepository) RangeRows(table, dateColumn, startDate, endDate string) ([]map[string]interface{}, error) {
	var rows []map[string]interface{}
	sql := `SELECT * FROM ` + table + ` WHERE ` + dateColumn + ` BETWEEN ? AND ?`
	if err := r.db.Raw(sql, startDate, endDate).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
