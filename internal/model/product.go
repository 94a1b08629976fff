package model

// Product is the product master. It is maintained outside this system;
// we only ever read it.
type Product struct {
	PrdID int64  `gorm:"column:PRD_ID;primaryKey;autoIncrement" json:"PRD_ID"`
	Code  string `gorm:"column:CODE;type:varchar(13);uniqueIndex;not null" json:"CODE"`
	Name  string `gorm:"column:NAME;type:varchar(50);not null" json:"NAME"`
	Price int64  `gorm:"column:PRICE;not null" json:"PRICE"`
}

func (Product) TableName() string {
	return "product_master"
}

// ProductSearchResponse is the lookup payload. A code with no match is a
// normal outcome: every field is null, not a 404.
type ProductSearchResponse struct {
	PrdID *int64  `json:"PRD_ID"`
	Code  *string `json:"CODE"`
	Name  *string `json:"NAME"`
	Price *int64  `json:"PRICE"`
}
