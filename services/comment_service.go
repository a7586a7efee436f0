package services

import (
	"context"
	"errors"
	"strconv"

	"news-forum-api/models"
	"news-forum-api/repositories"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type CommentService interface {
	GetComments(ctx context.Context, articleID int64, params models.ListParams) ([]models.Comment, int64, error)
	CreateComment(ctx context.Context, articleID int64, req models.CreateCommentRequest) (*models.Comment, error)
	UpdateCommentVotes(ctx context.Context, id int64, delta int64) (*models.Comment, error)
	DeleteComment(ctx context.Context, id int64) error
}

type commentService struct {
	store repositories.Store
}

func NewCommentService(store repositories.Store) CommentService {
	return &commentService{store: store}
}

func (s *commentService) GetComments(ctx context.Context, articleID int64, params models.ListParams) ([]models.Comment, int64, error) {
	repos := s.store.Repositories()
	if _, err := NewExistenceValidator(repos.Existence).Exists(ctx, repositories.CollectionArticles, strconv.FormatInt(articleID, 10), "article_id"); err != nil {
		return nil, 0, err
	}

	// Comments have no topic filter
	params.Topic = ""
	q, err := BuildListQuery(CommentListing, params)
	if err != nil {
		return nil, 0, err
	}
	q.ArticleID = articleID

	return repos.Comments.GetList(ctx, *q)
}

// CreateComment checks the article and the author concurrently so a missing
// article and a missing user produce different 404s. Both checks run to
// completion without a shared cancel, so the article result is always known
// when the user check fails first. The foreign keys still reject a parent
// deleted between the checks and the insert.
func (s *commentService) CreateComment(ctx context.Context, articleID int64, req models.CreateCommentRequest) (*models.Comment, error) {
	validator := NewExistenceValidator(s.store.Repositories().Existence)

	var articleErr error
	var g errgroup.Group
	g.Go(func() error {
		_, articleErr = validator.Exists(ctx, repositories.CollectionArticles, strconv.FormatInt(articleID, 10), "article_id")
		return articleErr
	})
	g.Go(func() error {
		_, err := validator.Exists(ctx, repositories.CollectionUsers, req.Username, "username")
		return err
	})
	if err := g.Wait(); err != nil {
		// The article is the path resource, so its failure wins
		if articleErr != nil {
			return nil, articleErr
		}
		return nil, err
	}

	comment := &models.Comment{
		Body:      req.Body,
		Author:    req.Username,
		ArticleID: articleID,
	}
	if err := s.store.Repositories().Comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *commentService) UpdateCommentVotes(ctx context.Context, id int64, delta int64) (*models.Comment, error) {
	var comment *models.Comment

	err := s.store.Transaction(ctx, func(repos repositories.Repositories) error {
		if _, err := NewExistenceValidator(repos.Existence).Exists(ctx, repositories.CollectionComments, strconv.FormatInt(id, 10), "comment_id"); err != nil {
			return err
		}
		if _, err := repos.Comments.IncrementVotes(ctx, id, delta); err != nil {
			return err
		}

		var err error
		comment, err = repos.Comments.GetByID(ctx, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NotFound("comment", id)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *commentService) DeleteComment(ctx context.Context, id int64) error {
	return s.store.Transaction(ctx, func(repos repositories.Repositories) error {
		if _, err := NewExistenceValidator(repos.Existence).Exists(ctx, repositories.CollectionComments, strconv.FormatInt(id, 10), "comment_id"); err != nil {
			return err
		}
		_, err := repos.Comments.Delete(ctx, id)
		return err
	})
}
