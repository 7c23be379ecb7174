package repositories

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestBuildStockReport(t *testing.T) {
	snaps := []snapshotQty{
		{Barcode: "8964000011", ItemName: "Bulb 12W", SnapQty: 10},
		{Barcode: "8964000022", ItemName: "Fan 56in", SnapQty: 4},
		{Barcode: "8964000033", ItemName: "Wire 7/29", SnapQty: 7},
	}
	ledgers := []ledgerQty{
		{Barcode: "8964000011", InQty: 5, OutQty: 8},
		// 8964000022 has no movement after the snapshot
		{Barcode: "8964000033", InQty: 0, OutQty: 7},
	}
	items := []itemRate{
		{Barcode: "8964000011", ItemName: "Bulb 12W", PurchasePrice: decimal.NewFromInt(150)},
		{Barcode: "8964000033", ItemName: "Wire 7/29", PurchasePrice: decimal.NewFromInt(80)},
		// 8964000022 is missing from items on purpose
	}

	rows := buildStockReport(snaps, ledgers, items)

	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	tests := []struct {
		barcode string
		qty     int
		rate    int64
		amount  int64
	}{
		{"8964000011", 7, 150, 1050},
		{"8964000022", 4, 0, 0},
		{"8964000033", 0, 80, 0},
	}

	for i, tt := range tests {
		row := rows[i]
		if row.Barcode != tt.barcode {
			t.Fatalf("row %d: expected barcode %s, got %s", i, tt.barcode, row.Barcode)
		}
		if row.StockQty != tt.qty {
			t.Errorf("%s: expected qty %d, got %d", tt.barcode, tt.qty, row.StockQty)
		}
		if !row.Rate.Equal(decimal.NewFromInt(tt.rate)) {
			t.Errorf("%s: expected rate %d, got %s", tt.barcode, tt.rate, row.Rate)
		}
		if !row.Amount.Equal(decimal.NewFromInt(tt.amount)) {
			t.Errorf("%s: expected amount %d, got %s", tt.barcode, tt.amount, row.Amount)
		}
	}
}

func TestBuildStockReportEmpty(t *testing.T) {
	rows := buildStockReport(nil, nil, nil)
	if len(rows) != 0 {
		t.Errorf("expected no rows, got %v", rows)
	}
}
