package services

import (
	"context"

	"news-forum-api/models"
	"news-forum-api/repositories"
)

type TopicService interface {
	GetTopics(ctx context.Context) ([]models.Topic, error)
	CreateTopic(ctx context.Context, req models.CreateTopicRequest) (*models.Topic, error)
}

type topicService struct {
	topicRepo repositories.TopicRepository
}

func NewTopicService(topicRepo repositories.TopicRepository) TopicService {
	return &topicService{topicRepo: topicRepo}
}

func (s *topicService) GetTopics(ctx context.Context) ([]models.Topic, error) {
	return s.topicRepo.GetAll(ctx)
}

// CreateTopic has no parent to guard; a duplicate slug surfaces as a unique
// violation from the store.
func (s *topicService) CreateTopic(ctx context.Context, req models.CreateTopicRequest) (*models.Topic, error) {
	topic := &models.Topic{
		Slug:        req.Slug,
		Description: req.Description,
	}

	if err := s.topicRepo.Create(ctx, topic); err != nil {
		return nil, err
	}

	return topic, nil
}
