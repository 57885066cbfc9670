package rpc

import (
	"context"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/truck-portal/internal/auth"
	"github.com/daniilsolovey/truck-portal/internal/portal"
)

// AcademyService provides the course catalog.
type AcademyService struct {
	zenrpc.Service
	manager *portal.Manager
}

func NewAcademyService(manager *portal.Manager) *AcademyService {
	return &AcademyService{manager: manager}
}

// GetCourses returns courses matching the filter, newest first.
//
//zenrpc:filter optional course filter
//zenrpc:return list of courses
//zenrpc:400 invalid filter
//zenrpc:503 storage unavailable
func (s AcademyService) GetCourses(ctx context.Context, filter *CourseFilter) ([]Course, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	page := filter.page()
	list, err := s.manager.Courses(ctx, filter.ToSearch(), page.pager())
	if err != nil {
		return nil, newError(err)
	}

	return newList(list, page.language(ctx), NewCourse), nil
}

// Count returns the number of courses matching the filter. Pagination fields are ignored.
//
//zenrpc:filter optional course filter
//zenrpc:return count of courses
//zenrpc:400 invalid filter
//zenrpc:503 storage unavailable
func (s AcademyService) Count(ctx context.Context, filter *CourseFilter) (int, error) {
	if err := filter.Validate(); err != nil {
		return 0, err
	}

	count, err := s.manager.CountCourses(ctx, filter.ToSearch())
	return count, newError(err)
}

// GetCourseByID returns a course or null.
//
//zenrpc:id course id
//zenrpc:lang optional language
//zenrpc:return course or null
//zenrpc:400 id must be positive
//zenrpc:503 storage unavailable
func (s AcademyService) GetCourseByID(ctx context.Context, id int, lang *string) (*Course, error) {
	l, err := resolveLang(ctx, lang)
	if err != nil {
		return nil, err
	} else if err = requirePositive("id", id); err != nil {
		return nil, err
	}

	course, err := s.manager.CourseByID(ctx, id)
	if err != nil {
		return nil, newError(err)
	} else if course == nil {
		return nil, nil
	}

	res := NewCourse(*course, l)
	return &res, nil
}

// GetCategories returns course categories ordered by English name.
//
//zenrpc:lang optional language
//zenrpc:return list of categories
//zenrpc:503 storage unavailable
func (s AcademyService) GetCategories(ctx context.Context, lang *string) ([]Category, error) {
	l, err := resolveLang(ctx, lang)
	if err != nil {
		return nil, err
	}

	list, err := s.manager.CourseCategories(ctx)
	if err != nil {
		return nil, newError(err)
	}

	return newList(list, l, NewCourseCategory), nil
}

// GetMaterials returns the training materials of a course in display order.
//
//zenrpc:courseId course id
//zenrpc:lang optional language
//zenrpc:return list of materials
//zenrpc:400 courseId must be positive
//zenrpc:503 storage unavailable
func (s AcademyService) GetMaterials(ctx context.Context, courseId int, lang *string) ([]TrainingMaterial, error) {
	l, err := resolveLang(ctx, lang)
	if err != nil {
		return nil, err
	} else if err = requirePositive("courseId", courseId); err != nil {
		return nil, err
	}

	list, err := s.manager.TrainingMaterials(ctx, courseId)
	if err != nil {
		return nil, newError(err)
	}

	return newList(list, l, NewTrainingMaterial), nil
}

// EnrollCourse enrolls the caller in a course.
//
//zenrpc:courseId course id
//zenrpc:return mutation result with enrollment id
//zenrpc:400 courseId must be positive
//zenrpc:401 not logged in
//zenrpc:404 course not found
//zenrpc:503 storage unavailable
func (s AcademyService) EnrollCourse(ctx context.Context, courseId int) (*MutationResult, error) {
	if err := requirePositive("courseId", courseId); err != nil {
		return nil, err
	}

	user := auth.UserFromContext(ctx)
	if user == nil {
		return nil, ErrNotLoggedIn
	}

	enrollment, err := s.manager.EnrollCourse(ctx, user.ID, courseId)
	if err != nil {
		return nil, newError(err)
	}

	return &MutationResult{Success: true, Message: "enrolled", ID: enrollment.ID}, nil
}
