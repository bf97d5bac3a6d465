package database

import (
	"database/sql"
	"fmt"

	"github.com/zeyaad-amr/adt-bot/internal/domain/entity"
)

type reportLogRepository struct {
	db *sql.DB
}

func newReportLogRepository(db *sql.DB) *reportLogRepository {
	return &reportLogRepository{db: db}
}

func (r *reportLogRepository) Create(record *entity.ReportRecord) error {
	query := `
		INSERT INTO report_log (kind, trigger_type, period_start, period_end, total_updates, posted_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		record.Kind,
		record.Trigger,
		record.PeriodStart,
		record.PeriodEnd,
		record.TotalUpdates,
		record.PostedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create report record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	record.ID = id
	return nil
}

func (r *reportLogRepository) ListRecent(limit int) ([]*entity.ReportRecord, error) {
	query := `
		SELECT id, kind, trigger_type, period_start, period_end, total_updates, posted_at
		FROM report_log
		ORDER BY posted_at DESC, id DESC
		LIMIT ?
	`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list report records: %w", err)
	}
	defer rows.Close()

	var records []*entity.ReportRecord
	for rows.Next() {
		record := &entity.ReportRecord{}
		err := rows.Scan(
			&record.ID,
			&record.Kind,
			&record.Trigger,
			&record.PeriodStart,
			&record.PeriodEnd,
			&record.TotalUpdates,
			&record.PostedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report record: %w", err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}
