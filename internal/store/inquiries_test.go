package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/oharris/listd/internal/domain"
	"github.com/oharris/listd/internal/store"
	"github.com/oharris/listd/internal/testhelpers"
)

var _ store.InquiryStore = (*store.SQLiteInquiryStore)(nil)

func TestInquiryCreateAndRespond(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	is := store.NewSQLiteInquiryStore(db)
	ctx := context.Background()

	propertyID := insertProperty(t, db, testProperty{title: "flat", city: "Lisbon", ptype: "Apartment", price: 1})

	created, err := is.Create(ctx, &domain.InquiryInput{
		PropertyID: propertyID,
		Name:       "Diana Lopes",
		Email:      "diana@example.com",
		Phone:      "+351 912 000 004",
		Message:    "Is this still available?",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Status != domain.InquiryNew {
		t.Errorf("expected status %q, got %q", domain.InquiryNew, created.Status)
	}

	responded, err := is.Respond(ctx, created.ID)
	if err != nil {
		t.Fatalf("respond: %v", err)
	}
	if responded.Status != domain.InquiryResponded {
		t.Errorf("expected status %q, got %q", domain.InquiryResponded, responded.Status)
	}

	list, err := is.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("expected 1 inquiry, got %d", len(list))
	}
}

func TestInquiryValidation(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	is := store.NewSQLiteInquiryStore(db)
	ctx := context.Background()

	var validationErr *store.ValidationError

	_, err := is.Create(ctx, &domain.InquiryInput{PropertyID: "p1"})
	if !errors.As(err, &validationErr) {
		t.Errorf("missing email: expected ValidationError, got %v", err)
	}

	_, err = is.Create(ctx, &domain.InquiryInput{Email: "x@example.com"})
	if !errors.As(err, &validationErr) {
		t.Errorf("missing property: expected ValidationError, got %v", err)
	}

	if _, err := is.Respond(ctx, "missing"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
