package repository

import (
	"context"

	"gorm.io/gorm"
)

// TxManager runs units of work inside a single database transaction
type TxManager struct {
	db *gorm.DB
}

// NewTxManager creates a new transaction manager
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// WithinTransaction runs fn in a transaction. Returning an error (or panicking)
// rolls back every write made through tx; returning nil commits.
func (m *TxManager) WithinTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return m.db.WithContext(ctx).Transaction(fn)
}
