package rpc

import (
	"context"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/truck-portal/internal/portal"
)

// LicensesService provides per-country license guides.
type LicensesService struct {
	zenrpc.Service
	manager *portal.Manager
}

func NewLicensesService(manager *portal.Manager) *LicensesService {
	return &LicensesService{manager: manager}
}

// GetGuides returns license requirements ordered by country.
// Region matches the region of the guide's license type.
//
//zenrpc:filter optional guide filter
//zenrpc:return list of guides
//zenrpc:400 invalid filter
//zenrpc:503 storage unavailable
func (s LicensesService) GetGuides(ctx context.Context, filter *LicenseGuideFilter) ([]LicenseGuide, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	page := filter.page()
	list, err := s.manager.LicenseGuides(ctx, filter.ToSearch(), page.pager())
	if err != nil {
		return nil, newError(err)
	}

	return newList(list, page.language(ctx), NewLicenseGuide), nil
}

//zenrpc:filter optional guide filter
//zenrpc:return count of guides
//zenrpc:400 invalid filter
//zenrpc:503 storage unavailable
func (s LicensesService) Count(ctx context.Context, filter *LicenseGuideFilter) (int, error) {
	if err := filter.Validate(); err != nil {
		return 0, err
	}

	count, err := s.manager.CountLicenseGuides(ctx, filter.ToSearch())
	return count, newError(err)
}

// GetTypes returns license types, optionally of one region.
//
//zenrpc:region optional region
//zenrpc:lang optional language
//zenrpc:return list of license types
//zenrpc:400 invalid region
//zenrpc:503 storage unavailable
func (s LicensesService) GetTypes(ctx context.Context, region, lang *string) ([]LicenseType, error) {
	l, err := resolveLang(ctx, lang)
	if err != nil {
		return nil, err
	} else if err = validateEnum("region", region, portal.Regions); err != nil {
		return nil, err
	}

	list, err := s.manager.LicenseTypes(ctx, region)
	if err != nil {
		return nil, newError(err)
	}

	return newList(list, l, NewLicenseType), nil
}

// GetTestMaterials returns study and exam materials.
//
//zenrpc:filter optional material filter
//zenrpc:return list of test materials
//zenrpc:400 invalid filter
//zenrpc:503 storage unavailable
func (s LicensesService) GetTestMaterials(ctx context.Context, filter *TestMaterialFilter) ([]TestMaterial, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	list, err := s.manager.TestMaterials(ctx, filter.ToSearch())
	if err != nil {
		return nil, newError(err)
	}

	return newList(list, filter.language(ctx), NewTestMaterial), nil
}
