package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/shopease/shopease-backend/api/responses"
	"github.com/shopease/shopease-backend/api/validators"
	"github.com/shopease/shopease-backend/internal/catalog"
	pkgerrors "github.com/shopease/shopease-backend/pkg/errors"
	"github.com/shopease/shopease-backend/pkg/logger"
	"github.com/shopease/shopease-backend/pkg/pagination"
)

const maxPage = 1_000_000

// ListProducts serves the storefront grid: free-text search, category
// filter and pagination.
func ListProducts(svc catalog.Service, logg *logger.Logger, opts responses.Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"), opts)
			return
		}

		page, err := parsePageParams(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err, opts)
			return
		}

		result, err := svc.List(r.Context(), catalog.ListInput{
			Search:   r.URL.Query().Get("search"),
			Category: r.URL.Query().Get("category"),
			Page:     page,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err, opts)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

func ProductCategories(svc catalog.Service, logg *logger.Logger, opts responses.Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"), opts)
			return
		}

		categories, err := svc.Categories(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err, opts)
			return
		}

		responses.WriteSuccess(w, categories)
	}
}

func GetProduct(svc catalog.Service, logg *logger.Logger, opts responses.Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"), opts)
			return
		}

		id, err := validators.ParsePathInt(chi.URLParam(r, "id"), "product id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err, opts)
			return
		}

		product, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err, opts)
			return
		}

		responses.WriteSuccess(w, product)
	}
}

// FeaturedProducts serves the homepage highlights. The limit URL segment is
// optional; the service applies its default when it is absent.
func FeaturedProducts(svc catalog.Service, logg *logger.Logger, opts responses.Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"), opts)
			return
		}

		limit := 0
		if raw := chi.URLParam(r, "limit"); raw != "" {
			parsed, err := validators.ParsePathInt(raw, "limit")
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err, opts)
				return
			}
			limit = int(parsed)
		}

		products, err := svc.Featured(r.Context(), limit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err, opts)
			return
		}

		responses.WriteSuccess(w, products)
	}
}

func ProductsByCategory(svc catalog.Service, logg *logger.Logger, opts responses.Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"), opts)
			return
		}

		category := strings.TrimSpace(chi.URLParam(r, "category"))
		if category == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "category is required"), opts)
			return
		}

		page, err := parsePageParams(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err, opts)
			return
		}

		result, err := svc.ListByCategory(r.Context(), category, page)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err, opts)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

func parsePageParams(r *http.Request) (pagination.Params, error) {
	page, err := validators.ParseQueryInt(r, "page", 1, 1, maxPage)
	if err != nil {
		return pagination.Params{}, err
	}
	limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
	if err != nil {
		return pagination.Params{}, err
	}
	return pagination.Params{Page: page, Limit: limit}, nil
}
