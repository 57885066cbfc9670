package portal

import (
	"context"

	"github.com/daniilsolovey/truck-portal/internal/db"
)

func (m *Manager) Articles(ctx context.Context, search *db.ArticleSearch, pager db.Pager) ([]Article, error) {
	list, err := m.db.Articles(ctx, search, pager)
	if err != nil {
		return []Article{}, m.readFailed(ctx, "articles", err)
	}

	return newList(list, NewArticle), nil
}

func (m *Manager) CountArticles(ctx context.Context, search *db.ArticleSearch) (int, error) {
	count, err := m.db.CountArticles(ctx, search)
	if err != nil {
		return 0, m.readFailed(ctx, "count articles", err)
	}

	return count, nil
}

func (m *Manager) ArticleByID(ctx context.Context, articleID int) (*Article, error) {
	dbArticle, err := m.db.ArticleByID(ctx, articleID)
	if err != nil {
		return nil, m.readFailed(ctx, "article by id", err)
	} else if dbArticle == nil {
		return nil, nil
	}

	article := NewArticle(dbArticle)
	return &article, nil
}

func (m *Manager) KnowledgeCategories(ctx context.Context) ([]KnowledgeCategory, error) {
	list, err := m.db.KnowledgeCategories(ctx)
	if err != nil {
		return []KnowledgeCategory{}, m.readFailed(ctx, "knowledge categories", err)
	}

	return newList(list, NewKnowledgeCategory), nil
}
