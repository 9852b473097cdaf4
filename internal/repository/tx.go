package repository

import (
	"context"

	"gorm.io/gorm"
)

// TxManager is the unit-of-work boundary. WithTx opens exactly one database
// transaction, runs fn with the transaction carried in ctx, commits when fn
// returns nil and rolls back otherwise. Repositories resolve the transaction
// with GetTx, so everything called inside fn shares the same unit of work and
// nothing else ever begins a transaction.
type TxManager interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type txKey struct{}

type TransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) TxManager {
	return &TransactionManager{db: db}
}

func (tm *TransactionManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

func GetTx(ctx context.Context, db *gorm.DB) *gorm.DB {
	tx, ok := ctx.Value(txKey{}).(*gorm.DB)
	if !ok {
		return db.WithContext(ctx)
	}
	return tx
}
