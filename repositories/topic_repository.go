package repositories

import (
	"context"

	"news-forum-api/models"

	"gorm.io/gorm"
)

type TopicRepository interface {
	Create(ctx context.Context, topic *models.Topic) error
	GetAll(ctx context.Context) ([]models.Topic, error)
}

type topicRepository struct {
	db *gorm.DB
}

func NewTopicRepository(db *gorm.DB) TopicRepository {
	return &topicRepository{db: db}
}

func (r *topicRepository) Create(ctx context.Context, topic *models.Topic) error {
	return r.db.WithContext(ctx).Create(topic).Error
}

func (r *topicRepository) GetAll(ctx context.Context) ([]models.Topic, error) {
	topics := []models.Topic{}
	err := r.db.WithContext(ctx).Order("slug asc").Find(&topics).Error
	return topics, err
}
