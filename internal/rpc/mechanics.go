package rpc

import (
	"context"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/truck-portal/internal/portal"
)

// MechanicsService provides repair and fabrication lessons.
type MechanicsService struct {
	zenrpc.Service
	manager *portal.Manager
}

func NewMechanicsService(manager *portal.Manager) *MechanicsService {
	return &MechanicsService{manager: manager}
}

// GetLessons returns lessons matching the filter, best rated first.
//
//zenrpc:filter optional lesson filter
//zenrpc:return list of lessons
//zenrpc:400 invalid filter
//zenrpc:503 storage unavailable
func (s MechanicsService) GetLessons(ctx context.Context, filter *LessonFilter) ([]Lesson, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	page := filter.page()
	list, err := s.manager.Lessons(ctx, filter.ToSearch(), page.pager())
	if err != nil {
		return nil, newError(err)
	}

	return newList(list, page.language(ctx), NewLesson), nil
}

//zenrpc:filter optional lesson filter
//zenrpc:return count of lessons
//zenrpc:400 invalid filter
//zenrpc:503 storage unavailable
func (s MechanicsService) Count(ctx context.Context, filter *LessonFilter) (int, error) {
	if err := filter.Validate(); err != nil {
		return 0, err
	}

	count, err := s.manager.CountLessons(ctx, filter.ToSearch())
	return count, newError(err)
}

//zenrpc:id lesson id
//zenrpc:lang optional language
//zenrpc:return lesson or null
//zenrpc:400 id must be positive
//zenrpc:503 storage unavailable
func (s MechanicsService) GetLessonByID(ctx context.Context, id int, lang *string) (*Lesson, error) {
	l, err := resolveLang(ctx, lang)
	if err != nil {
		return nil, err
	} else if err = requirePositive("id", id); err != nil {
		return nil, err
	}

	lesson, err := s.manager.LessonByID(ctx, id)
	if err != nil {
		return nil, newError(err)
	} else if lesson == nil {
		return nil, nil
	}

	res := NewLesson(*lesson, l)
	return &res, nil
}

//zenrpc:lang optional language
//zenrpc:return list of categories
//zenrpc:503 storage unavailable
func (s MechanicsService) GetCategories(ctx context.Context, lang *string) ([]Category, error) {
	l, err := resolveLang(ctx, lang)
	if err != nil {
		return nil, err
	}

	list, err := s.manager.LessonCategories(ctx)
	if err != nil {
		return nil, newError(err)
	}

	return newList(list, l, NewLessonCategory), nil
}
