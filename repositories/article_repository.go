package repositories

import (
	"context"
	"fmt"

	"news-forum-api/models"

	"gorm.io/gorm"
)

const articleSummaryColumns = "articles.article_id, articles.title, articles.topic, articles.author, " +
	"articles.created_at, articles.votes, articles.article_img_url, " +
	"COUNT(comments.comment_id) AS comment_count"

type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	GetByID(ctx context.Context, id int64) (*models.Article, error)
	GetList(ctx context.Context, q models.ListQuery) ([]models.ArticleSummary, int64, error)
	IncrementVotes(ctx context.Context, id int64, delta int64) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(ctx context.Context, article *models.Article) error {
	return r.db.WithContext(ctx).Create(article).Error
}

// GetByID returns gorm.ErrRecordNotFound when the article is absent.
func (r *articleRepository) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	var article models.Article
	err := r.db.WithContext(ctx).Model(&models.Article{}).
		Select("articles.*, COUNT(comments.comment_id) AS comment_count").
		Joins("LEFT JOIN comments ON comments.article_id = articles.article_id").
		Where("articles.article_id = ?", id).
		Group("articles.article_id").
		Take(&article).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) GetList(ctx context.Context, q models.ListQuery) ([]models.ArticleSummary, int64, error) {
	articles := []models.ArticleSummary{}
	var total int64

	query := r.db.WithContext(ctx).Table("articles")
	if q.Topic != "" {
		query = query.Where("articles.topic = ?", q.Topic)
	}
	query = query.Session(&gorm.Session{})

	// Count total before pagination
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count articles: %w", err)
	}

	if q.Limit == 0 {
		return articles, total, nil
	}

	err := query.Select(articleSummaryColumns).
		Joins("LEFT JOIN comments ON comments.article_id = articles.article_id").
		Group("articles.article_id").
		Order(fmt.Sprintf("%s %s", q.OrderBy, q.Direction)).
		Order(fmt.Sprintf("%s ASC", q.TieBreak)).
		Offset(q.Offset).
		Limit(q.Limit).
		Scan(&articles).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list articles: %w", err)
	}

	return articles, total, nil
}

// IncrementVotes applies delta in a single statement and returns rows affected.
func (r *articleRepository) IncrementVotes(ctx context.Context, id int64, delta int64) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.Article{}).
		Where("article_id = ?", id).
		UpdateColumn("votes", gorm.Expr("votes + ?", delta))
	return res.RowsAffected, res.Error
}

// Delete removes the article; its comments go with it through the
// ON DELETE CASCADE foreign key.
func (r *articleRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Where("article_id = ?", id).Delete(&models.Article{})
	return res.RowsAffected, res.Error
}
