package enquiries

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
	"github.com/shopease/shopease-backend/pkg/enums"
	pkgerrors "github.com/shopease/shopease-backend/pkg/errors"
)

func setupEnquiryTest(t *testing.T) (Service, *db.Client) {
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

func seedProduct(t *testing.T, client *db.Client, name string) int64 {
	t.Helper()
	id, err := client.Insert(context.Background(),
		`INSERT INTO products (name, category, short_desc, long_desc, price, rating, stock_quantity) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		name, "Furniture", "s", "l", 10.0, 4.0, 1)
	require.NoError(t, err)
	return id
}

func validSubmission() SubmitInput {
	return SubmitInput{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Message: "Do you ship internationally?",
	}
}

func TestSubmitRequiresNameEmailMessage(t *testing.T) {
	svc, _ := setupEnquiryTest(t)

	cases := []struct {
		label string
		mut   func(*SubmitInput)
	}{
		{"empty name", func(in *SubmitInput) { in.Name = "" }},
		{"empty email", func(in *SubmitInput) { in.Email = "" }},
		{"empty message", func(in *SubmitInput) { in.Message = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			input := validSubmission()
			tc.mut(&input)

			_, err := svc.Submit(context.Background(), input)
			require.Error(t, err)
			typed := pkgerrors.As(err)
			require.NotNil(t, typed)
			assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
		})
	}
}

func TestSubmitRejectsMalformedEmail(t *testing.T) {
	svc, _ := setupEnquiryTest(t)

	for _, email := range []string{"not-an-email", "a@b", "a b@c.com", "@example.com"} {
		input := validSubmission()
		input.Email = email

		_, err := svc.Submit(context.Background(), input)
		require.Error(t, err, "email %q should fail", email)
		typed := pkgerrors.As(err)
		require.NotNil(t, typed)
		assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
		assert.Equal(t, "invalid email format", typed.Message())
	}
}

func TestSubmitRejectsUnknownProduct(t *testing.T) {
	svc, _ := setupEnquiryTest(t)

	missing := int64(424242)
	input := validSubmission()
	input.ProductID = &missing

	_, err := svc.Submit(context.Background(), input)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestSubmitGeneralEnquiryStartsPending(t *testing.T) {
	svc, _ := setupEnquiryTest(t)

	id, err := svc.Submit(context.Background(), validSubmission())
	require.NoError(t, err)
	assert.Positive(t, id)

	listed, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, enums.EnquiryStatusPending, listed[0].Status)
	assert.Nil(t, listed[0].ProductID)
	assert.Nil(t, listed[0].ProductName)
}

func TestListJoinsProductName(t *testing.T) {
	svc, client := setupEnquiryTest(t)
	productID := seedProduct(t, client, "Walnut Desk")

	input := validSubmission()
	input.ProductID = &productID
	_, err := svc.Submit(context.Background(), input)
	require.NoError(t, err)

	listed, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.NotNil(t, listed[0].ProductName)
	assert.Equal(t, "Walnut Desk", *listed[0].ProductName)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc, _ := setupEnquiryTest(t)

	id, err := svc.Submit(context.Background(), validSubmission())
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), id, "Archived")
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestUpdateStatusRejectsUnknownEnquiry(t *testing.T) {
	svc, _ := setupEnquiryTest(t)

	_, err := svc.UpdateStatus(context.Background(), 9999, enums.EnquiryStatusCompleted.String())
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestUpdateStatusRestampsCreatedAtAndIsIdempotent(t *testing.T) {
	svc, _ := setupEnquiryTest(t)

	id, err := svc.Submit(context.Background(), validSubmission())
	require.NoError(t, err)

	before, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, before, 1)
	submittedAt := before[0].CreatedAt

	time.Sleep(1100 * time.Millisecond)

	status, err := svc.UpdateStatus(context.Background(), id, enums.EnquiryStatusCompleted.String())
	require.NoError(t, err)
	assert.Equal(t, enums.EnquiryStatusCompleted, status)

	// Same transition again: no error, same result.
	status, err = svc.UpdateStatus(context.Background(), id, enums.EnquiryStatusCompleted.String())
	require.NoError(t, err)
	assert.Equal(t, enums.EnquiryStatusCompleted, status)

	after, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, enums.EnquiryStatusCompleted, after[0].Status)
	assert.False(t, after[0].CreatedAt.Before(submittedAt), "created_at is re-stamped on status updates")

	// And back to Pending; both directions are legal.
	status, err = svc.UpdateStatus(context.Background(), id, enums.EnquiryStatusPending.String())
	require.NoError(t, err)
	assert.Equal(t, enums.EnquiryStatusPending, status)
}
