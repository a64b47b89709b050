package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry. Price and rating are numeric columns; the
// postgres driver returns them as strings, so they are carried as decimals
// and normalized to floats at the service boundary.
type Product struct {
	ID            int64           `gorm:"primaryKey"`
	Name          string          `gorm:"type:text;not null"`
	Category      string          `gorm:"type:text;not null;index"`
	ShortDesc     string          `gorm:"column:short_desc;type:text"`
	LongDesc      string          `gorm:"column:long_desc;type:text"`
	Price         decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	Rating        decimal.Decimal `gorm:"type:numeric(2,1);default:0"`
	StockQuantity int             `gorm:"not null;default:0"`
	ImageURL      *string         `gorm:"column:image_url;type:text"`
	CreatedAt     time.Time       `gorm:"type:timestamp;default:CURRENT_TIMESTAMP"`
}
