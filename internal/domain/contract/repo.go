package contract

import "github.com/zeyaad-amr/adt-bot/internal/domain/entity"

// DataManager aggregates all repository interfaces
type DataManager interface {
	ReportLog() ReportLogRepo
}

// ReportLogRepo defines the contract for the posted-report audit log
type ReportLogRepo interface {
	Create(record *entity.ReportRecord) error
	ListRecent(limit int) ([]*entity.ReportRecord, error)
}
