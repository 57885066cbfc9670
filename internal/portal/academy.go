package portal

import (
	"context"
	"fmt"

	"github.com/daniilsolovey/truck-portal/internal/db"
)

// Courses returns courses matching search, newest first.
func (m *Manager) Courses(ctx context.Context, search *db.CourseSearch, pager db.Pager) ([]Course, error) {
	list, err := m.db.Courses(ctx, search, pager)
	if err != nil {
		return []Course{}, m.readFailed(ctx, "courses", err)
	}

	return newList(list, NewCourse), nil
}

func (m *Manager) CountCourses(ctx context.Context, search *db.CourseSearch) (int, error) {
	count, err := m.db.CountCourses(ctx, search)
	if err != nil {
		return 0, m.readFailed(ctx, "count courses", err)
	}

	return count, nil
}

func (m *Manager) CourseByID(ctx context.Context, courseID int) (*Course, error) {
	dbCourse, err := m.db.CourseByID(ctx, courseID)
	if err != nil {
		return nil, m.readFailed(ctx, "course by id", err)
	} else if dbCourse == nil {
		return nil, nil
	}

	course := NewCourse(dbCourse)
	return &course, nil
}

func (m *Manager) CourseCategories(ctx context.Context) ([]CourseCategory, error) {
	list, err := m.db.CourseCategories(ctx)
	if err != nil {
		return []CourseCategory{}, m.readFailed(ctx, "course categories", err)
	}

	return newList(list, NewCourseCategory), nil
}

func (m *Manager) TrainingMaterials(ctx context.Context, courseID int) ([]TrainingMaterial, error) {
	list, err := m.db.TrainingMaterials(ctx, courseID)
	if err != nil {
		return []TrainingMaterial{}, m.readFailed(ctx, "training materials", err)
	}

	return newList(list, NewTrainingMaterial), nil
}

// EnrollCourse starts course progress for the user. Repeated calls create repeated enrollments.
func (m *Manager) EnrollCourse(ctx context.Context, userID, courseID int) (*Enrollment, error) {
	course, err := m.db.CourseByID(ctx, courseID)
	if err != nil {
		return nil, m.writeFailed(ctx, "enroll course", err)
	} else if course == nil {
		return nil, fmt.Errorf("course %d: %w", courseID, ErrNotFound)
	}

	progress, err := m.db.AddCourseProgress(ctx, userID, courseID)
	if err != nil {
		return nil, m.writeFailed(ctx, "enroll course", err)
	}

	m.logger.InfoContext(ctx, "course enrollment", "userId", userID, "courseId", courseID)
	return &Enrollment{UserCourseProgress: *progress}, nil
}
