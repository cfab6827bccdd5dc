package models

import "time"

// Product is the products table. Owner, Category and File exist only so
// AutoMigrate creates the foreign keys.
type Product struct {
	Base
	AccountID     string    `gorm:"size:64;index;not null"`
	Title         string    `gorm:"size:200;not null"`
	Contents      string    `gorm:"type:text"`
	Price         int64     `gorm:"not null;default:0"`
	DeliveryPrice int64     `gorm:"not null;default:0"`
	Status        string    `gorm:"size:16;not null;default:'AVAILABLE'"`
	IsTrade       bool      `gorm:"not null;default:false"`
	DibCount      int       `gorm:"not null;default:0"`
	CategoryID    int       `gorm:"index;not null"`
	FileID        *int64    `gorm:"index"`
	UpdateTime    time.Time `gorm:"not null"`

	Owner    *User     `gorm:"foreignKey:AccountID;references:ID;constraint:OnDelete:CASCADE"`
	Category *Category `gorm:"foreignKey:CategoryID;references:ID"`
	File     *File     `gorm:"foreignKey:FileID;references:ID;constraint:OnDelete:SET NULL"`
}

type Category struct {
	ID   int    `gorm:"primaryKey"`
	Name string `gorm:"size:64;uniqueIndex;not null"`
}

// File is an uploaded image; Path is relative to the static root,
// e.g. "/uploads/1700000000.jpg".
type File struct {
	Base
	AccountID    string `gorm:"size:64;index;not null"`
	Path         string `gorm:"size:255;not null"`
	OriginalName string `gorm:"size:255"`
}
