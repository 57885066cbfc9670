package rpc

import (
	"context"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/truck-portal/internal/portal"
)

// SchoolsService provides the driving school directory.
type SchoolsService struct {
	zenrpc.Service
	manager *portal.Manager
}

func NewSchoolsService(manager *portal.Manager) *SchoolsService {
	return &SchoolsService{manager: manager}
}

// GetSchools returns schools matching the filter, best rated first. Unrated schools go last.
//
//zenrpc:filter optional school filter
//zenrpc:return list of schools
//zenrpc:400 invalid filter
//zenrpc:503 storage unavailable
func (s SchoolsService) GetSchools(ctx context.Context, filter *SchoolFilter) ([]School, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	page := filter.page()
	list, err := s.manager.Schools(ctx, filter.ToSearch(), page.pager())
	if err != nil {
		return nil, newError(err)
	}

	return newList(list, page.language(ctx), NewSchool), nil
}

//zenrpc:filter optional school filter
//zenrpc:return count of schools
//zenrpc:400 invalid filter
//zenrpc:503 storage unavailable
func (s SchoolsService) Count(ctx context.Context, filter *SchoolFilter) (int, error) {
	if err := filter.Validate(); err != nil {
		return 0, err
	}

	count, err := s.manager.CountSchools(ctx, filter.ToSearch())
	return count, newError(err)
}

// GetSchoolByID returns a school or null.
//
//zenrpc:id school id
//zenrpc:lang optional language
//zenrpc:return school or null
//zenrpc:400 id must be positive
//zenrpc:503 storage unavailable
func (s SchoolsService) GetSchoolByID(ctx context.Context, id int, lang *string) (*School, error) {
	l, err := resolveLang(ctx, lang)
	if err != nil {
		return nil, err
	} else if err = requirePositive("id", id); err != nil {
		return nil, err
	}

	school, err := s.manager.SchoolByID(ctx, id)
	if err != nil {
		return nil, newError(err)
	} else if school == nil {
		return nil, nil
	}

	res := NewSchool(*school, l)
	return &res, nil
}

// GetPrograms returns the training programs of a school.
//
//zenrpc:schoolId school id
//zenrpc:lang optional language
//zenrpc:return list of programs
//zenrpc:400 schoolId must be positive
//zenrpc:503 storage unavailable
func (s SchoolsService) GetPrograms(ctx context.Context, schoolId int, lang *string) ([]TrainingProgram, error) {
	l, err := resolveLang(ctx, lang)
	if err != nil {
		return nil, err
	} else if err = requirePositive("schoolId", schoolId); err != nil {
		return nil, err
	}

	list, err := s.manager.TrainingPrograms(ctx, schoolId)
	if err != nil {
		return nil, newError(err)
	}

	return newList(list, l, NewTrainingProgram), nil
}
