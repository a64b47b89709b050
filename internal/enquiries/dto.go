package enquiries

import (
	"time"

	"github.com/shopease/shopease-backend/pkg/enums"
)

// EnquiryDTO is an enquiry enriched with the referenced product's name.
// ProductName is null for general enquiries or when the product is gone.
type EnquiryDTO struct {
	ID          int64               `json:"id"`
	ProductID   *int64              `json:"product_id"`
	Name        string              `json:"name"`
	Email       string              `json:"email"`
	Phone       *string             `json:"phone"`
	Message     string              `json:"message"`
	Status      enums.EnquiryStatus `json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
	ProductName *string             `json:"product_name"`
}

type enquiryRow struct {
	ID          int64     `gorm:"column:id"`
	ProductID   *int64    `gorm:"column:product_id"`
	Name        string    `gorm:"column:name"`
	Email       string    `gorm:"column:email"`
	Phone       *string   `gorm:"column:phone"`
	Message     string    `gorm:"column:message"`
	Status      string    `gorm:"column:status"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	ProductName *string   `gorm:"column:product_name"`
}

func newEnquiryDTO(row enquiryRow) EnquiryDTO {
	return EnquiryDTO{
		ID:          row.ID,
		ProductID:   row.ProductID,
		Name:        row.Name,
		Email:       row.Email,
		Phone:       row.Phone,
		Message:     row.Message,
		Status:      enums.EnquiryStatus(row.Status),
		CreatedAt:   row.CreatedAt,
		ProductName: row.ProductName,
	}
}
