package rpc

import (
	"context"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/truck-portal/internal/auth"
	"github.com/daniilsolovey/truck-portal/internal/portal"
)

// JobsService provides the job board.
type JobsService struct {
	zenrpc.Service
	manager *portal.Manager
}

func NewJobsService(manager *portal.Manager) *JobsService {
	return &JobsService{manager: manager}
}

// GetJobs returns jobs matching the filter ordered by postedAt DESC.
//
//zenrpc:filter optional job filter
//zenrpc:return list of jobs
//zenrpc:400 invalid filter
//zenrpc:503 storage unavailable
func (s JobsService) GetJobs(ctx context.Context, filter *JobFilter) ([]Job, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	page := filter.page()
	list, err := s.manager.Jobs(ctx, filter.ToSearch(), page.pager())
	if err != nil {
		return nil, newError(err)
	}

	return newList(list, page.language(ctx), NewJob), nil
}

// Count returns the number of jobs matching the filter.
//
//zenrpc:filter optional job filter
//zenrpc:return count of jobs
//zenrpc:400 invalid filter
//zenrpc:503 storage unavailable
func (s JobsService) Count(ctx context.Context, filter *JobFilter) (int, error) {
	if err := filter.Validate(); err != nil {
		return 0, err
	}

	count, err := s.manager.CountJobs(ctx, filter.ToSearch())
	return count, newError(err)
}

// GetJobByID returns a job or null.
//
//zenrpc:id job id
//zenrpc:lang optional language
//zenrpc:return job or null
//zenrpc:400 id must be positive
//zenrpc:503 storage unavailable
func (s JobsService) GetJobByID(ctx context.Context, id int, lang *string) (*Job, error) {
	l, err := resolveLang(ctx, lang)
	if err != nil {
		return nil, err
	} else if err = requirePositive("id", id); err != nil {
		return nil, err
	}

	job, err := s.manager.JobByID(ctx, id)
	if err != nil {
		return nil, newError(err)
	} else if job == nil {
		return nil, nil
	}

	res := NewJob(*job, l)
	return &res, nil
}

// GetCategories returns job categories.
//
//zenrpc:lang optional language
//zenrpc:return list of categories
//zenrpc:503 storage unavailable
func (s JobsService) GetCategories(ctx context.Context, lang *string) ([]Category, error) {
	l, err := resolveLang(ctx, lang)
	if err != nil {
		return nil, err
	}

	list, err := s.manager.JobCategories(ctx)
	if err != nil {
		return nil, newError(err)
	}

	return newList(list, l, NewJobCategory), nil
}

// SaveJob bookmarks a job for the caller.
//
//zenrpc:jobId job id
//zenrpc:return mutation result with saved job id
//zenrpc:400 jobId must be positive
//zenrpc:401 not logged in
//zenrpc:404 job not found
//zenrpc:503 storage unavailable
func (s JobsService) SaveJob(ctx context.Context, jobId int) (*MutationResult, error) {
	if err := requirePositive("jobId", jobId); err != nil {
		return nil, err
	}

	user := auth.UserFromContext(ctx)
	if user == nil {
		return nil, ErrNotLoggedIn
	}

	saved, err := s.manager.SaveJob(ctx, user.ID, jobId)
	if err != nil {
		return nil, newError(err)
	}

	return &MutationResult{Success: true, Message: "saved", ID: saved.ID}, nil
}
