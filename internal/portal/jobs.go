package portal

import (
	"context"
	"fmt"

	"github.com/daniilsolovey/truck-portal/internal/db"
)

// Jobs returns jobs matching search, most recently posted first.
func (m *Manager) Jobs(ctx context.Context, search *db.JobSearch, pager db.Pager) ([]Job, error) {
	list, err := m.db.Jobs(ctx, search, pager)
	if err != nil {
		return []Job{}, m.readFailed(ctx, "jobs", err)
	}

	return newList(list, NewJob), nil
}

func (m *Manager) CountJobs(ctx context.Context, search *db.JobSearch) (int, error) {
	count, err := m.db.CountJobs(ctx, search)
	if err != nil {
		return 0, m.readFailed(ctx, "count jobs", err)
	}

	return count, nil
}

func (m *Manager) JobByID(ctx context.Context, jobID int) (*Job, error) {
	dbJob, err := m.db.JobByID(ctx, jobID)
	if err != nil {
		return nil, m.readFailed(ctx, "job by id", err)
	} else if dbJob == nil {
		return nil, nil
	}

	job := NewJob(dbJob)
	return &job, nil
}

func (m *Manager) JobCategories(ctx context.Context) ([]JobCategory, error) {
	list, err := m.db.JobCategories(ctx)
	if err != nil {
		return []JobCategory{}, m.readFailed(ctx, "job categories", err)
	}

	return newList(list, NewJobCategory), nil
}

// SaveJob bookmarks a job for the user. Saving twice stores two bookmarks.
func (m *Manager) SaveJob(ctx context.Context, userID, jobID int) (*SavedJob, error) {
	job, err := m.db.JobByID(ctx, jobID)
	if err != nil {
		return nil, m.writeFailed(ctx, "save job", err)
	} else if job == nil {
		return nil, fmt.Errorf("job %d: %w", jobID, ErrNotFound)
	}

	saved, err := m.db.AddSavedJob(ctx, userID, jobID)
	if err != nil {
		return nil, m.writeFailed(ctx, "save job", err)
	}

	return &SavedJob{SavedJob: *saved}, nil
}
