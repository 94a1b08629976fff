package service

import (
	"errors"
	"time"

	"go-pos-api/internal/model"
	"go-pos-api/internal/repository"

	"gorm.io/gorm"
)

type POSService interface {
	LookupProduct(code string) (*model.ProductSearchResponse, error)
	RecordPurchase(req *model.PurchaseRequest) (*model.PurchaseResponse, error)
	ListTransactions(limit int) ([]model.Transaction, error)
}

type posService struct {
	productRepo     repository.ProductRepository
	transactionRepo repository.TransactionRepository
	db              *gorm.DB
}

func NewPOSService(pRepo repository.ProductRepository, tRepo repository.TransactionRepository, db *gorm.DB) POSService {
	return &posService{
		productRepo:     pRepo,
		transactionRepo: tRepo,
		db:              db,
	}
}

// LookupProduct resolves a product code to its master row. An unknown code
// is not an error: the response comes back with every field null.
func (s *posService) LookupProduct(code string) (*model.ProductSearchResponse, error) {
	product, err := s.productRepo.FindByCode(code)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &model.ProductSearchResponse{}, nil
	}
	if err != nil {
		return nil, err
	}
	return &model.ProductSearchResponse{
		PrdID: &product.PrdID,
		Code:  &product.Code,
		Name:  &product.Name,
		Price: &product.Price,
	}, nil
}

// RecordPurchase persists one purchase atomically: header with a placeholder
// total, details numbered 1..N in submission order, then the finalized total.
// Item prices are taken from the request as-is; the product master is not
// consulted. Any failure rolls the whole sequence back.
func (s *posService) RecordPurchase(req *model.PurchaseRequest) (*model.PurchaseResponse, error) {
	empCd := req.EmpCd
	if empCd == "" {
		empCd = model.DefaultEmpCd
	}
	storeCd := req.StoreCd
	if storeCd == "" {
		storeCd = model.DefaultStoreCd
	}
	posNo := req.PosNo
	if posNo == "" {
		posNo = model.DefaultPosNo
	}

	header := model.Transaction{
		Datetime: time.Now(),
		EmpCd:    empCd,
		StoreCd:  storeCd,
		PosNo:    posNo,
		TotalAmt: 0,
	}
	var totalAmount int64

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.transactionRepo.CreateHeader(tx, &header); err != nil {
			return err
		}

		for idx, item := range req.Items {
			detail := model.TransactionDetail{
				TrdID:    header.TrdID,
				DtlID:    idx + 1,
				PrdID:    *item.PrdID,
				PrdCode:  *item.PrdCode,
				PrdName:  *item.PrdName,
				PrdPrice: *item.PrdPrice,
			}
			if err := s.transactionRepo.CreateDetail(tx, &detail); err != nil {
				return err
			}
			totalAmount += *item.PrdPrice
		}

		return s.transactionRepo.UpdateTotal(tx, header.TrdID, totalAmount)
	})
	if err != nil {
		return nil, err
	}

	return &model.PurchaseResponse{
		Success:       true,
		TotalAmount:   totalAmount,
		TransactionID: &header.TrdID,
	}, nil
}

func (s *posService) ListTransactions(limit int) ([]model.Transaction, error) {
	return s.transactionRepo.FindRecent(limit)
}
