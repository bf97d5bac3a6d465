package database

import (
	"github.com/zeyaad-amr/adt-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db            *DB
	reportLogRepo contract.ReportLogRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	return &instance{
		db:            db,
		reportLogRepo: newReportLogRepository(db.conn),
	}
}

// ReportLog returns the posted-report audit log repository
func (i *instance) ReportLog() contract.ReportLogRepo {
	return i.reportLogRepo
}
