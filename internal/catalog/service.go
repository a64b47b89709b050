package catalog

import (
	"context"
	"fmt"

	pkgerrors "github.com/shopease/shopease-backend/pkg/errors"
	"github.com/shopease/shopease-backend/pkg/pagination"
)

// DefaultFeaturedLimit is used when the featured endpoint gets no limit.
const DefaultFeaturedLimit = 4

const productColumns = "id, name, category, short_desc, long_desc, price, rating, stock_quantity, image_url, created_at"

// Gateway is the read surface of the storage gateway the catalog needs.
type Gateway interface {
	FetchOne(ctx context.Context, dest any, query string, args ...any) (bool, error)
	FetchAll(ctx context.Context, dest any, query string, args ...any) error
}

// Service exposes catalog read operations.
type Service interface {
	List(ctx context.Context, input ListInput) (*ListResult, error)
	Categories(ctx context.Context) ([]string, error)
	Get(ctx context.Context, id int64) (*ProductDTO, error)
	Featured(ctx context.Context, limit int) ([]ProductDTO, error)
	ListByCategory(ctx context.Context, category string, page pagination.Params) (*ListResult, error)
}

// ListResult is a page of products plus its pagination envelope.
type ListResult struct {
	Products   []ProductDTO        `json:"products"`
	Pagination pagination.Envelope `json:"pagination"`
}

type service struct {
	gateway Gateway
}

// NewService constructs a catalog service over the storage gateway.
func NewService(gateway Gateway) (Service, error) {
	if gateway == nil {
		return nil, fmt.Errorf("storage gateway required")
	}
	return &service{gateway: gateway}, nil
}

// List returns a filtered, newest-first page of products. The total is
// counted over the filtered set before LIMIT/OFFSET apply, with the same
// predicate.
func (s *service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	input.Page = pagination.Normalize(input.Page)
	pred := listPredicate(input)

	var count struct {
		Total int64 `gorm:"column:total"`
	}
	if _, err := s.gateway.FetchOne(ctx, &count,
		"SELECT COUNT(*) AS total FROM products"+pred.where(), pred.args...); err != nil {
		return nil, err
	}

	var rows []productRow
	query := "SELECT " + productColumns + " FROM products" + pred.where() +
		" ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?"
	args := append(append([]any{}, pred.args...), input.Page.Limit, input.Page.Offset())
	if err := s.gateway.FetchAll(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	return &ListResult{
		Products:   newProductDTOs(rows),
		Pagination: pagination.NewEnvelope(input.Page, count.Total),
	}, nil
}

// Categories lists each distinct category exactly once, alphabetically.
func (s *service) Categories(ctx context.Context) ([]string, error) {
	var rows []struct {
		Category string `gorm:"column:category"`
	}
	if err := s.gateway.FetchAll(ctx,
		&rows, "SELECT DISTINCT category FROM products ORDER BY category"); err != nil {
		return nil, err
	}

	categories := make([]string, len(rows))
	for i, row := range rows {
		categories[i] = row.Category
	}
	return categories, nil
}

// Get loads a single product by id.
func (s *service) Get(ctx context.Context, id int64) (*ProductDTO, error) {
	var row productRow
	found, err := s.gateway.FetchOne(ctx, &row,
		"SELECT "+productColumns+" FROM products WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}

	dto := newProductDTO(row)
	return &dto, nil
}

// Featured returns the top-rated products, newest first on rating ties.
func (s *service) Featured(ctx context.Context, limit int) ([]ProductDTO, error) {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}
	if limit > pagination.MaxLimit {
		limit = pagination.MaxLimit
	}

	var rows []productRow
	if err := s.gateway.FetchAll(ctx, &rows,
		"SELECT "+productColumns+" FROM products ORDER BY rating DESC, created_at DESC, id DESC LIMIT ?",
		limit); err != nil {
		return nil, err
	}
	return newProductDTOs(rows), nil
}

// ListByCategory pages through one exact category, no free-text search and
// no "All" sentinel. The envelope echoes the category back for the
// frontend's breadcrumb.
func (s *service) ListByCategory(ctx context.Context, category string, page pagination.Params) (*ListResult, error) {
	page = pagination.Normalize(page)

	var count struct {
		Total int64 `gorm:"column:total"`
	}
	if _, err := s.gateway.FetchOne(ctx, &count,
		"SELECT COUNT(*) AS total FROM products WHERE category = ?", category); err != nil {
		return nil, err
	}

	var rows []productRow
	if err := s.gateway.FetchAll(ctx, &rows,
		"SELECT "+productColumns+" FROM products WHERE category = ? ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?",
		category, page.Limit, page.Offset()); err != nil {
		return nil, err
	}

	envelope := pagination.NewEnvelope(page, count.Total)
	envelope.Category = category

	return &ListResult{
		Products:   newProductDTOs(rows),
		Pagination: envelope,
	}, nil
}
