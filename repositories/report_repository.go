package repositories

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db}
}

type StockReportRow struct {
	Barcode  string          `json:"barcode"`
	ItemName string          `json:"item_name"`
	StockQty int             `json:"stock_qty"`
	Rate     decimal.Decimal `json:"rate"`
	Amount   decimal.Decimal `json:"amount"`
}

type snapshotQty struct {
	Barcode  string
	ItemName string
	SnapQty  int
}

type ledgerQty struct {
	Barcode string
	InQty   int
	OutQty  int
}

type itemRate struct {
	Barcode       string
	ItemName      string
	PurchasePrice decimal.Decimal
}

// StockReport values the current stock: rows from the latest snapshot
// plus netted in/out movements from stock_ledger recorded after the
// snapshot date, priced at the item purchase price. Returns a nil
// snapshot date and no rows when no snapshot exists yet.
func (r *ReportRepository) StockReport() (*time.Time, []StockReportRow, error) {
	var latest struct{ SnapDate *time.Time }
	if err := r.db.Raw(`SELECT MAX(snap_date) AS snap_date FROM stock_snapshots`).Scan(&latest).Error; err != nil {
		return nil, nil, err
	}
	if latest.SnapDate == nil {
		return nil, []StockReportRow{}, nil
	}

	var snaps []snapshotQty
	sqlSnap := `
		SELECT s.barcode, s.item_name, SUM(s.stock_qty) AS snap_qty
		FROM stock_snapshots s
		WHERE s.snap_date = ?
		GROUP BY s.barcode, s.item_name
	`
	if err := r.db.Raw(sqlSnap, latest.SnapDate).Scan(&snaps).Error; err != nil {
		return nil, nil, err
	}

	var ledgers []ledgerQty
	sqlLedger := `
		SELECT l.barcode, SUM(l.in_qty) AS in_qty, SUM(l.out_qty) AS out_qty
		FROM stock_ledger l
		WHERE l.created_at::date > ?
		GROUP BY l.barcode
	`
	if err := r.db.Raw(sqlLedger, latest.SnapDate).Scan(&ledgers).Error; err != nil {
		return nil, nil, err
	}

	var items []itemRate
	if err := r.db.Raw(`SELECT barcode, item_name, purchase_price FROM items`).Scan(&items).Error; err != nil {
		return nil, nil, err
	}

	return latest.SnapDate, buildStockReport(snaps, ledgers, items), nil
}

// buildStockReport merges the three result sets. A barcode missing from
// the ledger or the items table contributes zero movement and a zero
// rate; nothing may propagate as null into the arithmetic.
func buildStockReport(snaps []snapshotQty, ledgers []ledgerQty, items []itemRate) []StockReportRow {
	ledgerByBarcode := make(map[string]ledgerQty, len(ledgers))
	for _, l := range ledgers {
		ledgerByBarcode[l.Barcode] = l
	}

	rateByBarcode := make(map[string]decimal.Decimal, len(items))
	for _, i := range items {
		rateByBarcode[i.Barcode] = i.PurchasePrice
	}

	rows := make([]StockReportRow, 0, len(snaps))
	for _, s := range snaps {
		live := ledgerByBarcode[s.Barcode]
		rate := rateByBarcode[s.Barcode]

		qty := s.SnapQty + live.InQty - live.OutQty
		rows = append(rows, StockReportRow{
			Barcode:  s.Barcode,
			ItemName: s.ItemName,
			StockQty: qty,
			Rate:     rate,
			Amount:   rate.Mul(decimal.NewFromInt(int64(qty))),
		})
	}
	return rows
}
