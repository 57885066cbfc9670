package portal

import (
	"context"
)

func (m *Manager) Stats(ctx context.Context) (*Stats, error) {
	stats, err := m.db.Stats(ctx)
	if err != nil {
		if err = m.readFailed(ctx, "stats", err); err != nil {
			return nil, err
		}
		return &Stats{}, nil
	}

	return &Stats{Stats: *stats}, nil
}

// ScrapingStatus lists scraping sources with their most recent log entry.
func (m *Manager) ScrapingStatus(ctx context.Context) ([]ScrapingStatus, error) {
	sources, err := m.db.ScrapingSources(ctx)
	if err != nil {
		return []ScrapingStatus{}, m.readFailed(ctx, "scraping sources", err)
	}

	ids := make([]int, len(sources))
	for i := range sources {
		ids[i] = sources[i].ID
	}

	logs, err := m.db.LatestScrapingLogs(ctx, ids)
	if err != nil {
		return []ScrapingStatus{}, m.readFailed(ctx, "scraping logs", err)
	}

	result := make([]ScrapingStatus, len(sources))
	for i := range sources {
		result[i] = ScrapingStatus{ScrapingSource: sources[i]}
		if l, ok := logs[sources[i].ID]; ok {
			result[i].LatestLog = &l
		}
	}

	return result, nil
}
