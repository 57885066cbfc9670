package rpc

import (
	"context"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/truck-portal/internal/i18n"
	"github.com/daniilsolovey/truck-portal/internal/portal"
)

// AdminService is available to admins only.
type AdminService struct {
	zenrpc.Service
	manager *portal.Manager
}

func NewAdminService(manager *portal.Manager) *AdminService {
	return &AdminService{manager: manager}
}

// GetStats returns live portal counters.
//
//zenrpc:return portal statistics
//zenrpc:401 not logged in
//zenrpc:403 access denied
//zenrpc:503 storage unavailable
func (s AdminService) GetStats(ctx context.Context) (*Stats, error) {
	stats, err := s.manager.Stats(ctx)
	if err != nil {
		return nil, newError(err)
	}

	res := NewStats(stats)
	return &res, nil
}

// GetScrapingStatus lists scraping sources with their latest run.
//
//zenrpc:return list of scraping sources
//zenrpc:401 not logged in
//zenrpc:403 access denied
//zenrpc:503 storage unavailable
func (s AdminService) GetScrapingStatus(ctx context.Context) ([]ScrapingSource, error) {
	list, err := s.manager.ScrapingStatus(ctx)
	if err != nil {
		return nil, newError(err)
	}

	return newList(list, i18n.FromContext(ctx), NewScrapingSource), nil
}
