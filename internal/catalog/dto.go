package catalog

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// ProductDTO is the catalog payload returned to clients. Numeric fields are
// always materialized as numbers here, regardless of what the active storage
// engine hands back.
type ProductDTO struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	ShortDesc     string    `json:"short_desc"`
	LongDesc      string    `json:"long_desc"`
	Price         float64   `json:"price"`
	Rating        float64   `json:"rating"`
	StockQuantity int       `json:"stock_quantity"`
	ImageURL      *string   `json:"image_url"`
	CreatedAt     time.Time `json:"created_at"`
}

// productRow is the raw scan target. The postgres driver returns numeric
// columns as strings and sqlite returns them as numbers; decimal.NullDecimal
// absorbs both.
type productRow struct {
	ID            int64               `gorm:"column:id"`
	Name          string              `gorm:"column:name"`
	Category      string              `gorm:"column:category"`
	ShortDesc     string              `gorm:"column:short_desc"`
	LongDesc      string              `gorm:"column:long_desc"`
	Price         decimal.NullDecimal `gorm:"column:price"`
	Rating        decimal.NullDecimal `gorm:"column:rating"`
	StockQuantity sql.NullInt64       `gorm:"column:stock_quantity"`
	ImageURL      *string             `gorm:"column:image_url"`
	CreatedAt     time.Time           `gorm:"column:created_at"`
}

func newProductDTO(row productRow) ProductDTO {
	dto := ProductDTO{
		ID:        row.ID,
		Name:      row.Name,
		Category:  row.Category,
		ShortDesc: row.ShortDesc,
		LongDesc:  row.LongDesc,
		ImageURL:  row.ImageURL,
		CreatedAt: row.CreatedAt,
	}
	if row.Price.Valid {
		dto.Price = row.Price.Decimal.InexactFloat64()
	}
	if row.Rating.Valid {
		dto.Rating = row.Rating.Decimal.InexactFloat64()
	}
	if row.StockQuantity.Valid {
		dto.StockQuantity = int(row.StockQuantity.Int64)
	}
	return dto
}

func newProductDTOs(rows []productRow) []ProductDTO {
	dtos := make([]ProductDTO, len(rows))
	for i, row := range rows {
		dtos[i] = newProductDTO(row)
	}
	return dtos
}
