package dto

import "time"

// ProductStatus is the trade state of a listing.
type ProductStatus string

const (
	ProductStatusAvailable ProductStatus = "AVAILABLE"
	ProductStatusReserved  ProductStatus = "RESERVED"
	ProductStatusSold      ProductStatus = "SOLD"
)

func (s ProductStatus) Valid() bool {
	switch s {
	case ProductStatusAvailable, ProductStatusReserved, ProductStatusSold:
		return true
	}
	return false
}

type ProductDTO struct {
	ID            int64         `json:"id" gorm:"column:id"`
	AccountID     string        `json:"accountId" gorm:"column:account_id"`
	Title         string        `json:"title" gorm:"column:title"`
	Contents      string        `json:"contents" gorm:"column:contents"`
	Price         int64         `json:"price" gorm:"column:price"`
	DeliveryPrice int64         `json:"deliveryPrice" gorm:"column:delivery_price"`
	Status        ProductStatus `json:"status" gorm:"column:status"`
	IsTrade       bool          `json:"isTrade" gorm:"column:is_trade"`
	DibCount      int           `json:"dibCount" gorm:"column:dib_count"`
	CategoryID    int           `json:"categoryId" gorm:"column:category_id"`
	FileID        *int64        `json:"fileId" gorm:"column:file_id"`
	UpdateTime    time.Time     `json:"updateTime" gorm:"column:update_time"`
}

// ProductUpdate carries the fields of a partial update; nil means
// "leave as is".
type ProductUpdate struct {
	Title         *string
	Contents      *string
	Price         *int64
	DeliveryPrice *int64
	Status        *ProductStatus
	IsTrade       *bool
	DibCount      *int
	CategoryID    *int
	FileID        *int64
}

// ApplyTo copies the supplied fields onto p.
func (u ProductUpdate) ApplyTo(p *ProductDTO) {
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Contents != nil {
		p.Contents = *u.Contents
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.DeliveryPrice != nil {
		p.DeliveryPrice = *u.DeliveryPrice
	}
	if u.Status != nil {
		p.Status = *u.Status
	}
	if u.IsTrade != nil {
		p.IsTrade = *u.IsTrade
	}
	if u.DibCount != nil {
		p.DibCount = *u.DibCount
	}
	if u.CategoryID != nil {
		p.CategoryID = *u.CategoryID
	}
	if u.FileID != nil {
		p.FileID = u.FileID
	}
}
