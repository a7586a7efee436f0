package repositories

import (
	"context"

	"gorm.io/gorm"
)

// Repositories groups every repository bound to the same connection or
// transaction.
type Repositories struct {
	Articles  ArticleRepository
	Comments  CommentRepository
	Topics    TopicRepository
	Users     UserRepository
	Existence ExistenceRepository
}

func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Articles:  NewArticleRepository(db),
		Comments:  NewCommentRepository(db),
		Topics:    NewTopicRepository(db),
		Users:     NewUserRepository(db),
		Existence: NewExistenceRepository(db),
	}
}

// Store runs guard-then-mutate sequences atomically.
type Store interface {
	Repositories() Repositories
	Transaction(ctx context.Context, fn func(repos Repositories) error) error
}

type gormStore struct {
	db    *gorm.DB
	repos Repositories
}

func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db, repos: NewRepositories(db)}
}

func (s *gormStore) Repositories() Repositories {
	return s.repos
}

func (s *gormStore) Transaction(ctx context.Context, fn func(repos Repositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
