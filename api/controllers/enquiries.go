package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shopease/shopease-backend/api/responses"
	"github.com/shopease/shopease-backend/api/validators"
	"github.com/shopease/shopease-backend/internal/enquiries"
	pkgerrors "github.com/shopease/shopease-backend/pkg/errors"
	"github.com/shopease/shopease-backend/pkg/logger"
	"github.com/shopease/shopease-backend/pkg/types"
)

// submitEnquiryRequest carries the raw submission. The required and email
// checks live in the service so their messages and ordering stay exact; the
// tags here only cap field sizes.
type submitEnquiryRequest struct {
	ProductID *int64  `json:"product_id" validate:"omitempty,min=1"`
	Name      string  `json:"name" validate:"omitempty,max=255"`
	Email     string  `json:"email" validate:"omitempty,max=255"`
	Phone     *string `json:"phone" validate:"omitempty,max=50"`
	Message   string  `json:"message" validate:"omitempty,max=5000"`
}

type updateEnquiryStatusRequest struct {
	Status string `json:"status" validate:"omitempty,max=50"`
}

func SubmitEnquiry(svc enquiries.Service, logg *logger.Logger, opts responses.Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "enquiry service unavailable"), opts)
			return
		}

		var payload submitEnquiryRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err, opts)
			return
		}

		id, err := svc.Submit(r.Context(), enquiries.SubmitInput{
			ProductID: payload.ProductID,
			Name:      payload.Name,
			Email:     payload.Email,
			Phone:     payload.Phone,
			Message:   payload.Message,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err, opts)
			return
		}

		responses.WriteJSON(w, http.StatusCreated, types.MessageResponse{
			Message: "Enquiry submitted successfully",
			ID:      id,
		})
	}
}

func ListEnquiries(svc enquiries.Service, logg *logger.Logger, opts responses.Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "enquiry service unavailable"), opts)
			return
		}

		listed, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err, opts)
			return
		}

		responses.WriteSuccess(w, listed)
	}
}

func UpdateEnquiryStatus(svc enquiries.Service, logg *logger.Logger, opts responses.Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "enquiry service unavailable"), opts)
			return
		}

		id, err := validators.ParsePathInt(chi.URLParam(r, "id"), "enquiry id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err, opts)
			return
		}

		var payload updateEnquiryStatusRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err, opts)
			return
		}

		status, err := svc.UpdateStatus(r.Context(), id, payload.Status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err, opts)
			return
		}

		responses.WriteSuccess(w, types.MessageResponse{
			Message: "Enquiry status updated",
			ID:      id,
			Status:  status.String(),
		})
	}
}
