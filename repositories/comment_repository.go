package repositories

import (
	"context"
	"fmt"

	"news-forum-api/models"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id int64) (*models.Comment, error)
	GetList(ctx context.Context, q models.ListQuery) ([]models.Comment, int64, error)
	IncrementVotes(ctx context.Context, id int64, delta int64) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.WithContext(ctx).Where("comment_id = ?", id).Take(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) GetList(ctx context.Context, q models.ListQuery) ([]models.Comment, int64, error) {
	comments := []models.Comment{}
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Comment{}).
		Where("comments.article_id = ?", q.ArticleID).
		Session(&gorm.Session{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count comments: %w", err)
	}

	if q.Limit == 0 {
		return comments, total, nil
	}

	err := query.
		Order(fmt.Sprintf("%s %s", q.OrderBy, q.Direction)).
		Order(fmt.Sprintf("%s ASC", q.TieBreak)).
		Offset(q.Offset).
		Limit(q.Limit).
		Find(&comments).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list comments: %w", err)
	}

	return comments, total, nil
}

func (r *commentRepository) IncrementVotes(ctx context.Context, id int64, delta int64) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.Comment{}).
		Where("comment_id = ?", id).
		UpdateColumn("votes", gorm.Expr("votes + ?", delta))
	return res.RowsAffected, res.Error
}

func (r *commentRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Where("comment_id = ?", id).Delete(&models.Comment{})
	return res.RowsAffected, res.Error
}
