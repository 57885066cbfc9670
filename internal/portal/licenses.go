package portal

import (
	"context"

	"github.com/daniilsolovey/truck-portal/internal/db"
)

// LicenseGuides returns per-country license requirements ordered by country.
func (m *Manager) LicenseGuides(ctx context.Context, search *db.LicenseGuideSearch, pager db.Pager) ([]LicenseGuide, error) {
	list, err := m.db.LicenseGuides(ctx, search, pager)
	if err != nil {
		return []LicenseGuide{}, m.readFailed(ctx, "license guides", err)
	}

	return newList(list, NewLicenseGuide), nil
}

func (m *Manager) CountLicenseGuides(ctx context.Context, search *db.LicenseGuideSearch) (int, error) {
	count, err := m.db.CountLicenseGuides(ctx, search)
	if err != nil {
		return 0, m.readFailed(ctx, "count license guides", err)
	}

	return count, nil
}

func (m *Manager) LicenseTypes(ctx context.Context, region *string) ([]LicenseType, error) {
	list, err := m.db.LicenseTypes(ctx, region)
	if err != nil {
		return []LicenseType{}, m.readFailed(ctx, "license types", err)
	}

	return newList(list, NewLicenseType), nil
}

func (m *Manager) TestMaterials(ctx context.Context, search *db.TestMaterialSearch) ([]TestMaterial, error) {
	list, err := m.db.TestMaterials(ctx, search)
	if err != nil {
		return []TestMaterial{}, m.readFailed(ctx, "test materials", err)
	}

	return newList(list, NewTestMaterial), nil
}
