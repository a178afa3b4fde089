package sqlite

import (
	"context"

	"gorm.io/gorm"

	"propfirm-assistant/internal/assistant/repository"
	"propfirm-assistant/pkg/log"
)

type implRepository struct {
	db *gorm.DB
	l  log.Logger
}

// New creates a new SQLite-backed FirmRepository.
func New(db *gorm.DB, l log.Logger) repository.FirmRepository {
	if db == nil {
		panic("assistant/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// InitSchema migrates all prop-firm tables.
func InitSchema(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(
		&firmModel{},
		&accountPlanModel{},
		&faqModel{},
		&tradingRuleModel{},
		&payoutPolicyModel{},
		&platformModel{},
	)
}
