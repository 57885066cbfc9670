package rpc

import (
	"context"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/truck-portal/internal/auth"
	"github.com/daniilsolovey/truck-portal/internal/portal"
)

// MarketplaceService provides equipment listings.
type MarketplaceService struct {
	zenrpc.Service
	manager *portal.Manager
}

func NewMarketplaceService(manager *portal.Manager) *MarketplaceService {
	return &MarketplaceService{manager: manager}
}

// GetListings returns listings matching the filter, newest first.
//
//zenrpc:filter optional listing filter
//zenrpc:return list of listings
//zenrpc:400 invalid filter
//zenrpc:503 storage unavailable
func (s MarketplaceService) GetListings(ctx context.Context, filter *ListingFilter) ([]Listing, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	page := filter.page()
	list, err := s.manager.Listings(ctx, filter.ToSearch(), page.pager())
	if err != nil {
		return nil, newError(err)
	}

	return newList(list, page.language(ctx), NewListing), nil
}

// Count returns the number of listings matching the filter.
//
//zenrpc:filter optional listing filter
//zenrpc:return count of listings
//zenrpc:400 invalid filter
//zenrpc:503 storage unavailable
func (s MarketplaceService) Count(ctx context.Context, filter *ListingFilter) (int, error) {
	if err := filter.Validate(); err != nil {
		return 0, err
	}

	count, err := s.manager.CountListings(ctx, filter.ToSearch())
	return count, newError(err)
}

// GetListingByID returns a listing or null.
//
//zenrpc:id listing id
//zenrpc:lang optional language
//zenrpc:return listing or null
//zenrpc:400 id must be positive
//zenrpc:503 storage unavailable
func (s MarketplaceService) GetListingByID(ctx context.Context, id int, lang *string) (*Listing, error) {
	l, err := resolveLang(ctx, lang)
	if err != nil {
		return nil, err
	} else if err = requirePositive("id", id); err != nil {
		return nil, err
	}

	listing, err := s.manager.ListingByID(ctx, id)
	if err != nil {
		return nil, newError(err)
	} else if listing == nil {
		return nil, nil
	}

	res := NewListing(*listing, l)
	return &res, nil
}

// GetCategories returns equipment categories.
//
//zenrpc:lang optional language
//zenrpc:return list of categories
//zenrpc:503 storage unavailable
func (s MarketplaceService) GetCategories(ctx context.Context, lang *string) ([]Category, error) {
	l, err := resolveLang(ctx, lang)
	if err != nil {
		return nil, err
	}

	list, err := s.manager.EquipmentCategories(ctx)
	if err != nil {
		return nil, newError(err)
	}

	return newList(list, l, NewEquipmentCategory), nil
}

// CreateListing publishes a listing owned by the caller.
//
//zenrpc:listing listing to publish
//zenrpc:return mutation result with listing id
//zenrpc:400 invalid listing
//zenrpc:401 not logged in
//zenrpc:503 storage unavailable
func (s MarketplaceService) CreateListing(ctx context.Context, listing ListingInput) (*MutationResult, error) {
	if err := listing.Validate(); err != nil {
		return nil, err
	}

	user := auth.UserFromContext(ctx)
	if user == nil {
		return nil, ErrNotLoggedIn
	}

	created, err := s.manager.CreateListing(ctx, user.ID, listing.ToModel())
	if err != nil {
		return nil, newError(err)
	}

	return &MutationResult{Success: true, Message: "listing created", ID: created.ID}, nil
}
