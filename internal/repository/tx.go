package repository

import (
	"context"

	"gorm.io/gorm"
)

type Transactor interface {
	WithinTransaction(ctx context.Context, tFunc func(ctx context.Context) error) error
}

type TxManager struct {
	db *gorm.DB
}

var _ Transactor = (*TxManager)(nil)

func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

type txKey struct{}

// WithinTransaction runs tFunc inside one transaction and injects the tx into the
// context. A context that already carries a tx joins it.
func (tm *TxManager) WithinTransaction(ctx context.Context, tFunc func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tFunc(ctx)
	}

	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tFunc(context.WithValue(ctx, txKey{}, tx))
	})
}

// conn returns the transaction from ctx if present, else the pool handle.
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}
