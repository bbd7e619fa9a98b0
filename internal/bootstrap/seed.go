package bootstrap

import (
	"context"

	"go-viagens/internal/costtype"
	"go-viagens/internal/role"
	"go-viagens/internal/shared/sequence"
	"go-viagens/internal/tripstatus"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedReferenceData inserts the fixed lookup rows on first boot. Each table
// is only touched when empty, so operator edits survive restarts.
func SeedReferenceData(ctx context.Context, db *gorm.DB) error {
	logger := zap.L().Named("bootstrap.seed")

	roleRepo := role.NewRepository(db)
	statusRepo := tripstatus.NewRepository(db)
	costTypeRepo := costtype.NewRepository(db)
	seqRepo := sequence.NewRepository(db)

	if count, err := roleRepo.Count(ctx); err != nil {
		return err
	} else if count == 0 {
		rows := role.SeedRows()
		if err := roleRepo.CreateAll(ctx, rows); err != nil {
			return err
		}
		if err := seqRepo.EnsureAtLeast(ctx, "role", int64(len(rows))); err != nil {
			return err
		}
		logger.Info("seeded roles", zap.Int("count", len(rows)))
	}

	if count, err := statusRepo.Count(ctx); err != nil {
		return err
	} else if count == 0 {
		rows := tripstatus.SeedRows()
		if err := statusRepo.CreateAll(ctx, rows); err != nil {
			return err
		}
		logger.Info("seeded trip statuses", zap.Int("count", len(rows)))
	}

	if count, err := costTypeRepo.Count(ctx); err != nil {
		return err
	} else if count == 0 {
		rows := costtype.SeedRows()
		if err := costTypeRepo.CreateAll(ctx, rows); err != nil {
			return err
		}
		logger.Info("seeded cost types", zap.Int("count", len(rows)))
	}

	return nil
}
