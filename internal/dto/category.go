package dto

// SortStatus orders a product search.
type SortStatus string

const (
	SortCategories SortStatus = "CATEGORIES"
	SortNewest     SortStatus = "NEWEST"
	SortOldest     SortStatus = "OLDEST"
	SortHighPrice  SortStatus = "HIGHPRICE"
	SortLowPrice   SortStatus = "LOWPRICE"
	SortGrade      SortStatus = "GRADE"
)

func (s SortStatus) Valid() bool {
	switch s {
	case SortCategories, SortNewest, SortOldest, SortHighPrice, SortLowPrice, SortGrade:
		return true
	}
	return false
}

const (
	DefaultSearchCount = 20
	MaxSearchCount     = 100
)

// CategoryDTO doubles as the persisted category row (ID, Name) and the
// query-shaping parameters of a product search.
type CategoryDTO struct {
	ID                int        `json:"id" form:"categoryId" gorm:"column:id"`
	Name              string     `json:"name" form:"name" gorm:"column:name"`
	SortStatus        SortStatus `json:"sortStatus,omitempty" form:"sortStatus" gorm:"-"`
	SearchCount       int        `json:"searchCount,omitempty" form:"searchCount" gorm:"-"`
	PagingStartOffset int        `json:"pagingStartOffset,omitempty" form:"pagingStartOffset" gorm:"-"`
}

// Normalize fills the defaults of an unset search and clamps the page size.
func (c *CategoryDTO) Normalize() {
	if c.SortStatus == "" {
		c.SortStatus = SortNewest
	}
	if c.SearchCount <= 0 {
		c.SearchCount = DefaultSearchCount
	}
	if c.SearchCount > MaxSearchCount {
		c.SearchCount = MaxSearchCount
	}
	if c.PagingStartOffset < 0 {
		c.PagingStartOffset = 0
	}
}
