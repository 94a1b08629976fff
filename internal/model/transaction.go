package model

import "time"

// Sentinel defaults applied when the purchase request omits an identifier.
const (
	DefaultEmpCd   = "9999999999"
	DefaultStoreCd = "30"
	DefaultPosNo   = "90"
)

// Transaction is one purchase header row. TotalAmt transiently holds 0
// between header insert and total finalization; after commit it always
// equals the sum of the detail prices.
type Transaction struct {
	TrdID    int64     `gorm:"column:TRD_ID;primaryKey;autoIncrement" json:"TRD_ID"`
	Datetime time.Time `gorm:"column:DATETIME;not null" json:"DATETIME"`
	EmpCd    string    `gorm:"column:EMP_CD;type:varchar(10);not null" json:"EMP_CD"`
	StoreCd  string    `gorm:"column:STORE_CD;type:varchar(5);not null" json:"STORE_CD"`
	PosNo    string    `gorm:"column:POS_NO;type:varchar(5);not null" json:"POS_NO"`
	TotalAmt int64     `gorm:"column:TOTAL_AMT;not null" json:"TOTAL_AMT"`

	Details []TransactionDetail `gorm:"foreignKey:TrdID;references:TrdID" json:"-"`
}

func (Transaction) TableName() string {
	return "transaction"
}

// TransactionDetail is one line item, keyed by (TRD_ID, DTL_ID) with DTL_ID
// counting 1..N in submission order. Product fields are snapshots taken at
// purchase time so later price changes never alter historical receipts.
type TransactionDetail struct {
	TrdID    int64  `gorm:"column:TRD_ID;primaryKey;autoIncrement:false" json:"TRD_ID"`
	DtlID    int    `gorm:"column:DTL_ID;primaryKey;autoIncrement:false" json:"DTL_ID"`
	PrdID    int64  `gorm:"column:PRD_ID;not null" json:"PRD_ID"`
	PrdCode  string `gorm:"column:PRD_CODE;type:varchar(13);not null" json:"PRD_CODE"`
	PrdName  string `gorm:"column:PRD_NAME;type:varchar(50);not null" json:"PRD_NAME"`
	PrdPrice int64  `gorm:"column:PRD_PRICE;not null" json:"PRD_PRICE"`
}

func (TransactionDetail) TableName() string {
	return "transaction_detail"
}

// PurchaseItem carries the caller-supplied product snapshot. Pointer fields
// so a missing key is rejected while explicit zero values pass.
type PurchaseItem struct {
	PrdID    *int64  `json:"PRD_ID" validate:"required"`
	PrdCode  *string `json:"PRD_CODE" validate:"required"`
	PrdName  *string `json:"PRD_NAME" validate:"required"`
	PrdPrice *int64  `json:"PRD_PRICE" validate:"required"`
}

type PurchaseRequest struct {
	EmpCd   string         `json:"EMP_CD"`
	StoreCd string         `json:"STORE_CD"`
	PosNo   string         `json:"POS_NO"`
	Items   []PurchaseItem `json:"items" validate:"omitempty,dive"`
}

type PurchaseResponse struct {
	Success       bool   `json:"success"`
	TotalAmount   int64  `json:"total_amount"`
	TransactionID *int64 `json:"transaction_id"`
}
