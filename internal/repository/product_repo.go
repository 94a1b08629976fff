package repository

import (
	"go-pos-api/internal/model"

	"gorm.io/gorm"
)

type ProductRepository interface {
	FindByCode(code string) (*model.Product, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

// FindByCode does an exact-match lookup against the product master.
// The code is passed through as-is; no format validation.
func (r *productRepo) FindByCode(code string) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "CODE = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}
