package rpc

import (
	"context"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/truck-portal/internal/portal"
)

// KnowledgeService provides the knowledge base.
type KnowledgeService struct {
	zenrpc.Service
	manager *portal.Manager
}

func NewKnowledgeService(manager *portal.Manager) *KnowledgeService {
	return &KnowledgeService{manager: manager}
}

// GetArticles returns articles matching the filter, newest first.
//
//zenrpc:filter optional article filter
//zenrpc:return list of articles
//zenrpc:400 invalid filter
//zenrpc:503 storage unavailable
func (s KnowledgeService) GetArticles(ctx context.Context, filter *ArticleFilter) ([]Article, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	page := filter.page()
	list, err := s.manager.Articles(ctx, filter.ToSearch(), page.pager())
	if err != nil {
		return nil, newError(err)
	}

	return newList(list, page.language(ctx), NewArticle), nil
}

//zenrpc:filter optional article filter
//zenrpc:return count of articles
//zenrpc:400 invalid filter
//zenrpc:503 storage unavailable
func (s KnowledgeService) Count(ctx context.Context, filter *ArticleFilter) (int, error) {
	if err := filter.Validate(); err != nil {
		return 0, err
	}

	count, err := s.manager.CountArticles(ctx, filter.ToSearch())
	return count, newError(err)
}

// GetArticleByID returns an article or null.
//
//zenrpc:id article id
//zenrpc:lang optional language
//zenrpc:return article or null
//zenrpc:400 id must be positive
//zenrpc:503 storage unavailable
func (s KnowledgeService) GetArticleByID(ctx context.Context, id int, lang *string) (*Article, error) {
	l, err := resolveLang(ctx, lang)
	if err != nil {
		return nil, err
	} else if err = requirePositive("id", id); err != nil {
		return nil, err
	}

	article, err := s.manager.ArticleByID(ctx, id)
	if err != nil {
		return nil, newError(err)
	} else if article == nil {
		return nil, nil
	}

	res := NewArticle(*article, l)
	return &res, nil
}

//zenrpc:lang optional language
//zenrpc:return list of categories
//zenrpc:503 storage unavailable
func (s KnowledgeService) GetCategories(ctx context.Context, lang *string) ([]Category, error) {
	l, err := resolveLang(ctx, lang)
	if err != nil {
		return nil, err
	}

	list, err := s.manager.KnowledgeCategories(ctx)
	if err != nil {
		return nil, newError(err)
	}

	return newList(list, l, NewKnowledgeCategory), nil
}
