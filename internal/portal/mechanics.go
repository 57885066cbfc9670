package portal

import (
	"context"

	"github.com/daniilsolovey/truck-portal/internal/db"
)

func (m *Manager) Lessons(ctx context.Context, search *db.LessonSearch, pager db.Pager) ([]Lesson, error) {
	list, err := m.db.Lessons(ctx, search, pager)
	if err != nil {
		return []Lesson{}, m.readFailed(ctx, "lessons", err)
	}

	return newList(list, NewLesson), nil
}

func (m *Manager) CountLessons(ctx context.Context, search *db.LessonSearch) (int, error) {
	count, err := m.db.CountLessons(ctx, search)
	if err != nil {
		return 0, m.readFailed(ctx, "count lessons", err)
	}

	return count, nil
}

func (m *Manager) LessonByID(ctx context.Context, lessonID int) (*Lesson, error) {
	dbLesson, err := m.db.LessonByID(ctx, lessonID)
	if err != nil {
		return nil, m.readFailed(ctx, "lesson by id", err)
	} else if dbLesson == nil {
		return nil, nil
	}

	lesson := NewLesson(dbLesson)
	return &lesson, nil
}

func (m *Manager) LessonCategories(ctx context.Context) ([]LessonCategory, error) {
	list, err := m.db.LessonCategories(ctx)
	if err != nil {
		return []LessonCategory{}, m.readFailed(ctx, "lesson categories", err)
	}

	return newList(list, NewLessonCategory), nil
}
