package services

import (
	"context"
	"errors"
	"strconv"

	"news-forum-api/models"
	"news-forum-api/repositories"

	"gorm.io/gorm"
)

type ArticleService interface {
	GetArticles(ctx context.Context, params models.ListParams) ([]models.ArticleSummary, int64, error)
	GetArticle(ctx context.Context, id int64) (*models.Article, error)
	CreateArticle(ctx context.Context, req models.CreateArticleRequest) (*models.Article, error)
	UpdateArticleVotes(ctx context.Context, id int64, delta int64) (*models.Article, error)
	DeleteArticle(ctx context.Context, id int64) error
}

type articleService struct {
	store repositories.Store
}

func NewArticleService(store repositories.Store) ArticleService {
	return &articleService{store: store}
}

func (s *articleService) GetArticles(ctx context.Context, params models.ListParams) ([]models.ArticleSummary, int64, error) {
	q, err := BuildListQuery(ArticleListing, params)
	if err != nil {
		return nil, 0, err
	}

	repos := s.store.Repositories()
	if q.Topic != "" {
		if _, err := NewExistenceValidator(repos.Existence).Exists(ctx, repositories.CollectionTopics, q.Topic, "slug"); err != nil {
			return nil, 0, err
		}
	}

	return repos.Articles.GetList(ctx, *q)
}

func (s *articleService) GetArticle(ctx context.Context, id int64) (*models.Article, error) {
	article, err := s.store.Repositories().Articles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NotFound("article", id)
		}
		return nil, err
	}
	return article, nil
}

func (s *articleService) CreateArticle(ctx context.Context, req models.CreateArticleRequest) (*models.Article, error) {
	article := &models.Article{
		Title:         req.Title,
		Body:          req.Body,
		Topic:         req.Topic,
		Author:        req.Author,
		ArticleImgURL: req.ArticleImgURL,
	}

	err := s.store.Transaction(ctx, func(repos repositories.Repositories) error {
		validator := NewExistenceValidator(repos.Existence)
		if _, err := validator.Exists(ctx, repositories.CollectionUsers, req.Author, "username"); err != nil {
			return err
		}
		if _, err := validator.Exists(ctx, repositories.CollectionTopics, req.Topic, "slug"); err != nil {
			return err
		}
		return repos.Articles.Create(ctx, article)
	})
	if err != nil {
		return nil, err
	}

	// A new article has no comments yet
	article.CommentCount = 0
	return article, nil
}

func (s *articleService) UpdateArticleVotes(ctx context.Context, id int64, delta int64) (*models.Article, error) {
	var article *models.Article

	err := s.store.Transaction(ctx, func(repos repositories.Repositories) error {
		if _, err := NewExistenceValidator(repos.Existence).Exists(ctx, repositories.CollectionArticles, strconv.FormatInt(id, 10), "article_id"); err != nil {
			return err
		}
		if _, err := repos.Articles.IncrementVotes(ctx, id, delta); err != nil {
			return err
		}

		var err error
		article, err = repos.Articles.GetByID(ctx, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NotFound("article", id)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	return article, nil
}

func (s *articleService) DeleteArticle(ctx context.Context, id int64) error {
	return s.store.Transaction(ctx, func(repos repositories.Repositories) error {
		if _, err := NewExistenceValidator(repos.Existence).Exists(ctx, repositories.CollectionArticles, strconv.FormatInt(id, 10), "article_id"); err != nil {
			return err
		}
		_, err := repos.Articles.Delete(ctx, id)
		return err
	})
}
