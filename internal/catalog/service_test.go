package catalog

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopease/shopease-backend/pkg/config"
	"github.com/shopease/shopease-backend/pkg/db"
	"github.com/shopease/shopease-backend/pkg/db/models"
	pkgerrors "github.com/shopease/shopease-backend/pkg/errors"
	"github.com/shopease/shopease-backend/pkg/pagination"
)

func setupCatalogTest(t *testing.T) (Service, *db.Client) {
	t.Helper()

	client, err := db.New(context.Background(), config.DBConfig{
		Driver: config.DriverSQLite,
		DSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()),
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, client.DB().AutoMigrate(&models.Product{}, &models.Enquiry{}))

	svc, err := NewService(client)
	require.NoError(t, err)
	return svc, client
}

func seedProduct(t *testing.T, client *db.Client, name, category, shortDesc, longDesc string, price, rating float64, createdAt time.Time) int64 {
	t.Helper()

	id, err := client.Insert(context.Background(),
		`INSERT INTO products (name, category, short_desc, long_desc, price, rating, stock_quantity, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		name, category, shortDesc, longDesc, price, rating, 5, createdAt)
	require.NoError(t, err)
	return id
}

func TestListOrdersNewestFirstAndPaginates(t *testing.T) {
	svc, client := setupCatalogTest(t)
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	seedProduct(t, client, "Oak Shelf", "Furniture", "oak", "floating shelf", 129, 4.0, base)
	seedProduct(t, client, "Walnut Desk", "Furniture", "walnut", "standing desk", 499, 4.5, base.Add(time.Hour))
	seedProduct(t, client, "Desk Lamp", "Lighting", "brass", "adjustable arm", 59, 4.2, base.Add(2*time.Hour))

	result, err := svc.List(context.Background(), ListInput{Page: pagination.Params{Page: 1, Limit: 2}})
	require.NoError(t, err)

	require.Len(t, result.Products, 2)
	assert.Equal(t, "Desk Lamp", result.Products[0].Name)
	assert.Equal(t, "Walnut Desk", result.Products[1].Name)
	assert.Equal(t, int64(3), result.Pagination.Total)
	assert.Equal(t, int64(2), result.Pagination.Pages)

	result, err = svc.List(context.Background(), ListInput{Page: pagination.Params{Page: 2, Limit: 2}})
	require.NoError(t, err)
	require.Len(t, result.Products, 1)
	assert.Equal(t, "Oak Shelf", result.Products[0].Name)
}

func TestListSearchIsCaseInsensitiveAcrossDescriptions(t *testing.T) {
	svc, client := setupCatalogTest(t)
	now := time.Now().UTC()

	seedProduct(t, client, "Walnut Desk", "Furniture", "solid walnut", "a standing desk", 499, 4.5, now)
	seedProduct(t, client, "Oak Shelf", "Furniture", "oak", "mentions WALNUT finish", 129, 4.0, now.Add(time.Minute))
	seedProduct(t, client, "Desk Lamp", "Lighting", "brass", "adjustable arm", 59, 4.2, now.Add(2*time.Minute))

	result, err := svc.List(context.Background(), ListInput{Search: "  walnut "})
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Pagination.Total)
	require.Len(t, result.Products, 2)
}

func TestListSearchWithoutMatchesYieldsEmptyPage(t *testing.T) {
	svc, client := setupCatalogTest(t)
	seedProduct(t, client, "Oak Shelf", "Furniture", "oak", "shelf", 129, 4.0, time.Now().UTC())

	result, err := svc.List(context.Background(), ListInput{Search: "All-caps-search-does-not-exist"})
	require.NoError(t, err)
	assert.Empty(t, result.Products)
	assert.Zero(t, result.Pagination.Total)
	assert.Zero(t, result.Pagination.Pages)
}

func TestListCategoryAllMeansNoFilter(t *testing.T) {
	svc, client := setupCatalogTest(t)
	now := time.Now().UTC()
	seedProduct(t, client, "Oak Shelf", "Furniture", "oak", "shelf", 129, 4.0, now)
	seedProduct(t, client, "Desk Lamp", "Lighting", "brass", "lamp", 59, 4.2, now.Add(time.Minute))

	all, err := svc.List(context.Background(), ListInput{Category: CategoryAll})
	require.NoError(t, err)
	unfiltered, err := svc.List(context.Background(), ListInput{})
	require.NoError(t, err)

	assert.Equal(t, unfiltered.Pagination.Total, all.Pagination.Total)
	assert.Equal(t, len(unfiltered.Products), len(all.Products))

	lighting, err := svc.List(context.Background(), ListInput{Category: "Lighting"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), lighting.Pagination.Total)
}

func TestCategoriesAreDistinctAndSorted(t *testing.T) {
	svc, client := setupCatalogTest(t)
	now := time.Now().UTC()
	seedProduct(t, client, "Desk Lamp", "Lighting", "brass", "lamp", 59, 4.2, now)
	seedProduct(t, client, "Oak Shelf", "Furniture", "oak", "shelf", 129, 4.0, now)
	seedProduct(t, client, "Walnut Desk", "Furniture", "walnut", "desk", 499, 4.5, now)

	categories, err := svc.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Furniture", "Lighting"}, categories)
}

func TestGetReturnsNormalizedNumbers(t *testing.T) {
	svc, client := setupCatalogTest(t)
	id := seedProduct(t, client, "Walnut Desk", "Furniture", "walnut", "desk", 499.99, 4.5, time.Now().UTC())

	product, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Walnut Desk", product.Name)
	assert.InDelta(t, 499.99, product.Price, 0.001)
	assert.InDelta(t, 4.5, product.Rating, 0.001)
	assert.Equal(t, 5, product.StockQuantity)
}

func TestGetMissingProductIsNotFound(t *testing.T) {
	svc, _ := setupCatalogTest(t)

	_, err := svc.Get(context.Background(), 99999)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestFeaturedBreaksRatingTiesByNewest(t *testing.T) {
	svc, client := setupCatalogTest(t)
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	seedProduct(t, client, "Older Star", "Furniture", "a", "a", 100, 4.9, base)
	seedProduct(t, client, "Newer Star", "Furniture", "b", "b", 100, 4.9, base.Add(time.Hour))
	seedProduct(t, client, "Mediocre", "Furniture", "c", "c", 100, 3.0, base.Add(2*time.Hour))

	featured, err := svc.Featured(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, featured, 2)
	assert.Equal(t, "Newer Star", featured[0].Name)
	assert.Equal(t, "Older Star", featured[1].Name)
}

func TestFeaturedDefaultsLimit(t *testing.T) {
	svc, client := setupCatalogTest(t)
	now := time.Now().UTC()
	for i := 0; i < 6; i++ {
		seedProduct(t, client, fmt.Sprintf("P%d", i), "Furniture", "s", "l", 10, 4.0, now.Add(time.Duration(i)*time.Minute))
	}

	featured, err := svc.Featured(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, featured, DefaultFeaturedLimit)
}

func TestListByCategoryEchoesCategoryInEnvelope(t *testing.T) {
	svc, client := setupCatalogTest(t)
	now := time.Now().UTC()
	seedProduct(t, client, "Oak Shelf", "Furniture", "oak", "shelf", 129, 4.0, now)
	seedProduct(t, client, "Desk Lamp", "Lighting", "brass", "lamp", 59, 4.2, now)

	result, err := svc.ListByCategory(context.Background(), "Furniture", pagination.Params{})
	require.NoError(t, err)
	require.Len(t, result.Products, 1)
	assert.Equal(t, "Furniture", result.Pagination.Category)
	assert.Equal(t, int64(1), result.Pagination.Total)
	assert.Equal(t, pagination.DefaultLimit, result.Pagination.Limit)
}
