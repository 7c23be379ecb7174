package repositories

import (
	"gorm.io/gorm"
)

// BackupTables is the fixed, ordered list of tables included in a full
// backup and eligible for restore.
var BackupTables = []string{
	"sales",
	"purchases",
	"items",
	"customers",
	"app_users",
	"sale_returns",
	"stock_snapshots",
	"snapshot_logs",
}

type BackupRepository struct {
	db *gorm.DB
}

func NewBackupRepository(db *gorm.DB) *BackupRepository {
	return &BackupRepository{db}
}

// FetchTable reads the complete table in one go (no pagination) and
// returns the column names in result-set order plus one value slice
// per row.
func (r *BackupRepository) FetchTable(table string) ([]string, [][]interface{}, error) {
	rows, err := r.db.Raw(`SELECT * FROM ` + table).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	var records [][]interface{}
	for rows.Next() {
		values := make([]interface{}, len(cols))
		ptrs := make([]interface{}, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, err
		}
		records = append(records, values)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	return cols, records, nil
}

// ReplaceTable deletes every existing row and bulk-inserts the parsed
// bundle rows. The two steps are separate statements, not one
// transaction: a failed insert leaves the table empty, matching the
// wholesale-replace contract of restore.
func (r *BackupRepository) ReplaceTable(table string, rows []map[string]interface{}) error {
	if err := r.db.Exec(`DELETE FROM ` + table).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return r.db.Table(table).Create(&rows).Error
}
