package portal

import (
	"context"

	"github.com/daniilsolovey/truck-portal/internal/db"
)

func (m *Manager) Schools(ctx context.Context, search *db.SchoolSearch, pager db.Pager) ([]School, error) {
	list, err := m.db.Schools(ctx, search, pager)
	if err != nil {
		return []School{}, m.readFailed(ctx, "schools", err)
	}

	return newList(list, NewSchool), nil
}

func (m *Manager) CountSchools(ctx context.Context, search *db.SchoolSearch) (int, error) {
	count, err := m.db.CountSchools(ctx, search)
	if err != nil {
		return 0, m.readFailed(ctx, "count schools", err)
	}

	return count, nil
}

func (m *Manager) SchoolByID(ctx context.Context, schoolID int) (*School, error) {
	dbSchool, err := m.db.SchoolByID(ctx, schoolID)
	if err != nil {
		return nil, m.readFailed(ctx, "school by id", err)
	} else if dbSchool == nil {
		return nil, nil
	}

	school := NewSchool(dbSchool)
	return &school, nil
}

func (m *Manager) TrainingPrograms(ctx context.Context, schoolID int) ([]TrainingProgram, error) {
	list, err := m.db.TrainingPrograms(ctx, schoolID)
	if err != nil {
		return []TrainingProgram{}, m.readFailed(ctx, "training programs", err)
	}

	return newList(list, NewTrainingProgram), nil
}
