package portal

import (
	"context"

	"github.com/daniilsolovey/truck-portal/internal/db"
)

// Listings returns marketplace listings matching search, newest first.
func (m *Manager) Listings(ctx context.Context, search *db.ListingSearch, pager db.Pager) ([]Listing, error) {
	list, err := m.db.Listings(ctx, search, pager)
	if err != nil {
		return []Listing{}, m.readFailed(ctx, "listings", err)
	}

	return newList(list, NewListing), nil
}

func (m *Manager) CountListings(ctx context.Context, search *db.ListingSearch) (int, error) {
	count, err := m.db.CountListings(ctx, search)
	if err != nil {
		return 0, m.readFailed(ctx, "count listings", err)
	}

	return count, nil
}

func (m *Manager) ListingByID(ctx context.Context, listingID int) (*Listing, error) {
	dbListing, err := m.db.ListingByID(ctx, listingID)
	if err != nil {
		return nil, m.readFailed(ctx, "listing by id", err)
	} else if dbListing == nil {
		return nil, nil
	}

	listing := NewListing(dbListing)
	return &listing, nil
}

func (m *Manager) EquipmentCategories(ctx context.Context) ([]EquipmentCategory, error) {
	list, err := m.db.EquipmentCategories(ctx)
	if err != nil {
		return []EquipmentCategory{}, m.readFailed(ctx, "equipment categories", err)
	}

	return newList(list, NewEquipmentCategory), nil
}

// CreateListing stores a listing owned by userID with status active.
func (m *Manager) CreateListing(ctx context.Context, userID int, in Listing) (*Listing, error) {
	row := in.Listing
	row.ID = 0
	row.UserID = &userID
	row.Status = db.ListingStatusActive
	row.ViewCount = 0

	created, err := m.db.AddListing(ctx, &row)
	if err != nil {
		return nil, m.writeFailed(ctx, "create listing", err)
	}

	m.logger.InfoContext(ctx, "listing created", "listingId", created.ID, "userId", userID)
	listing := NewListing(created)
	return &listing, nil
}
