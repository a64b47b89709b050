package models

import (
	"time"

	"github.com/shopease/shopease-backend/pkg/enums"
)

// Enquiry is a customer-submitted request, optionally referencing a product.
// ProductID is a weak reference: existence is checked at submission only, so
// there is deliberately no FK constraint.
//
// CreatedAt is overwritten on every status update; the admin panel treats it
// as "last touched".
type Enquiry struct {
	ID        int64               `gorm:"primaryKey"`
	ProductID *int64              `gorm:"index"`
	Name      string              `gorm:"type:text;not null"`
	Email     string              `gorm:"type:text;not null"`
	Phone     *string             `gorm:"type:text"`
	Message   string              `gorm:"type:text;not null"`
	Status    enums.EnquiryStatus `gorm:"type:text;not null;default:'Pending'"`
	CreatedAt time.Time           `gorm:"type:timestamp;default:CURRENT_TIMESTAMP"`
}
