package models

import "time"

// Base holds the surrogate key and timestamps shared by numeric-keyed tables.
type Base struct {
	ID        int64 `gorm:"primaryKey"`
	CreatedAt time.Time
}

// All lists the schema models in dependency order for AutoMigrate.
func All() []any {
	return []any{&User{}, &Category{}, &File{}, &Product{}}
}
