package repository

import (
	"go-pos-api/internal/model"

	"gorm.io/gorm"
)

type TransactionRepository interface {
	// Write methods take *gorm.DB so they run inside the caller's transaction.
	CreateHeader(tx *gorm.DB, header *model.Transaction) error
	CreateDetail(tx *gorm.DB, detail *model.TransactionDetail) error
	UpdateTotal(tx *gorm.DB, trdID int64, total int64) error

	FindRecent(limit int) ([]model.Transaction, error)
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db}
}

// CreateHeader inserts the header row and backfills the auto-assigned TRD_ID
// into header.
func (r *transactionRepo) CreateHeader(tx *gorm.DB, header *model.Transaction) error {
	return tx.Create(header).Error
}

func (r *transactionRepo) CreateDetail(tx *gorm.DB, detail *model.TransactionDetail) error {
	return tx.Create(detail).Error
}

func (r *transactionRepo) UpdateTotal(tx *gorm.DB, trdID int64, total int64) error {
	return tx.Model(&model.Transaction{}).
		Where("TRD_ID = ?", trdID).
		Update("TOTAL_AMT", total).Error
}

// FindRecent returns up to limit header rows, newest first. Limit 0 is a
// valid request and yields an empty list.
func (r *transactionRepo) FindRecent(limit int) ([]model.Transaction, error) {
	transactions := make([]model.Transaction, 0)
	err := r.db.Order("DATETIME DESC").Limit(limit).Find(&transactions).Error
	return transactions, err
}
