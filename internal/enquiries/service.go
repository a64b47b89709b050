package enquiries

import (
	"context"
	"fmt"
	"regexp"

	"github.com/shopease/shopease-backend/pkg/enums"
	pkgerrors "github.com/shopease/shopease-backend/pkg/errors"
)

// emailPattern is deliberately loose: one local part, one domain, one tld,
// no whitespace. The frontend applies the same shape.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Gateway is the storage surface the enquiry workflow needs.
type Gateway interface {
	FetchOne(ctx context.Context, dest any, query string, args ...any) (bool, error)
	FetchAll(ctx context.Context, dest any, query string, args ...any) error
	Insert(ctx context.Context, query string, args ...any) (int64, error)
	Execute(ctx context.Context, query string, args ...any) (int64, error)
}

// SubmitInput is a raw enquiry submission. ProductID nil means a general
// enquiry.
type SubmitInput struct {
	ProductID *int64
	Name      string
	Email     string
	Phone     *string
	Message   string
}

// Service exposes the enquiry submission and triage workflow.
type Service interface {
	Submit(ctx context.Context, input SubmitInput) (int64, error)
	List(ctx context.Context) ([]EnquiryDTO, error)
	UpdateStatus(ctx context.Context, id int64, status string) (enums.EnquiryStatus, error)
}

type service struct {
	gateway Gateway
}

// NewService constructs an enquiry service over the storage gateway.
func NewService(gateway Gateway) (Service, error) {
	if gateway == nil {
		return nil, fmt.Errorf("storage gateway required")
	}
	return &service{gateway: gateway}, nil
}

// Submit validates and persists an enquiry. Checks run in order and fail
// fast, so nothing is written on a validation failure: required fields,
// email shape, then product existence when a product is referenced. New
// enquiries always start Pending.
func (s *service) Submit(ctx context.Context, input SubmitInput) (int64, error) {
	if input.Name == "" || input.Email == "" || input.Message == "" {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "name, email, and message are required")
	}

	if !emailPattern.MatchString(input.Email) {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "invalid email format")
	}

	if input.ProductID != nil {
		var ref struct {
			ID int64 `gorm:"column:id"`
		}
		found, err := s.gateway.FetchOne(ctx, &ref, "SELECT id FROM products WHERE id = ?", *input.ProductID)
		if err != nil {
			return 0, err
		}
		if !found {
			return 0, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
	}

	// Status and created_at come from the column defaults.
	return s.gateway.Insert(ctx,
		"INSERT INTO enquiries (product_id, name, email, phone, message) VALUES (?, ?, ?, ?, ?)",
		input.ProductID, input.Name, input.Email, input.Phone, input.Message)
}

// List returns every enquiry joined with its product name, newest first.
func (s *service) List(ctx context.Context) ([]EnquiryDTO, error) {
	var rows []enquiryRow
	err := s.gateway.FetchAll(ctx, &rows, `
SELECT e.id, e.product_id, e.name, e.email, e.phone, e.message, e.status, e.created_at,
       p.name AS product_name
FROM enquiries e
LEFT JOIN products p ON e.product_id = p.id
ORDER BY e.created_at DESC, e.id DESC`)
	if err != nil {
		return nil, err
	}

	dtos := make([]EnquiryDTO, len(rows))
	for i, row := range rows {
		dtos[i] = newEnquiryDTO(row)
	}
	return dtos, nil
}

// UpdateStatus moves an enquiry between Pending and Completed. Both
// directions are allowed and repeating a transition is a no-op success.
// created_at is re-stamped to now on every update, matching the behavior
// the admin panel has always shown ("last touched", not submission time).
func (s *service) UpdateStatus(ctx context.Context, id int64, status string) (enums.EnquiryStatus, error) {
	parsed, err := enums.ParseEnquiryStatus(status)
	if err != nil {
		return "", pkgerrors.New(pkgerrors.CodeValidation, `invalid status, must be "Pending" or "Completed"`)
	}

	var ref struct {
		ID int64 `gorm:"column:id"`
	}
	found, err := s.gateway.FetchOne(ctx, &ref, "SELECT id FROM enquiries WHERE id = ?", id)
	if err != nil {
		return "", err
	}
	if !found {
		return "", pkgerrors.New(pkgerrors.CodeNotFound, "enquiry not found")
	}

	if _, err := s.gateway.Execute(ctx,
		"UPDATE enquiries SET status = ?, created_at = CURRENT_TIMESTAMP WHERE id = ?",
		parsed.String(), id); err != nil {
		return "", err
	}

	return parsed, nil
}
