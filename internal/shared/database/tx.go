package database

import (
	"context"

	"gorm.io/gorm"
)

// TxManager owns the transactional boundary for aggregate writes. Services run
// their multi-row mutations inside Do; repositories join the transaction via
// their WithTx method.
//
//go:generate mockgen -source=tx.go -destination=mock/tx_mock.go -package=mock
type TxManager interface {
	Do(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type gormTxManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) TxManager {
	return &gormTxManager{db: db}
}

func (m *gormTxManager) Do(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return m.db.WithContext(ctx).Transaction(fn)
}
