package seed

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"news-forum-api/models"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed data.yaml
var defaultData []byte

type Data struct {
	Topics   []models.Topic `yaml:"topics"`
	Users    []UserRow      `yaml:"users"`
	Articles []ArticleRow   `yaml:"articles"`
	Comments []CommentRow   `yaml:"comments"`
}

type UserRow struct {
	Username  string `yaml:"username"`
	Name      string `yaml:"name"`
	AvatarURL string `yaml:"avatar_url"`
}

type ArticleRow struct {
	Title         string    `yaml:"title"`
	Topic         string    `yaml:"topic"`
	Author        string    `yaml:"author"`
	Body          string    `yaml:"body"`
	CreatedAt     time.Time `yaml:"created_at"`
	Votes         int64     `yaml:"votes"`
	ArticleImgURL string    `yaml:"article_img_url"`
}

// CommentRow points at its article by 1-based position in Data.Articles.
type CommentRow struct {
	Body      string    `yaml:"body"`
	Article   int       `yaml:"article"`
	Author    string    `yaml:"author"`
	Votes     int64     `yaml:"votes"`
	CreatedAt time.Time `yaml:"created_at"`
}

// Parse decodes a fixture document.
func Parse(raw []byte) (*Data, error) {
	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("error parsing seed data: %w", err)
	}
	for i, c := range data.Comments {
		if c.Article < 1 || c.Article > len(data.Articles) {
			return nil, fmt.Errorf("comment %d references article %d, have %d articles", i+1, c.Article, len(data.Articles))
		}
	}
	return &data, nil
}

// Default returns the bundled development fixtures.
func Default() (*Data, error) {
	return Parse(defaultData)
}

// Seed empties every table, resets the serial counters and loads data.
func Seed(ctx context.Context, db *gorm.DB, data *Data, logger *zap.Logger) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("TRUNCATE comments, articles, users, topics RESTART IDENTITY CASCADE").Error; err != nil {
			return fmt.Errorf("error truncating tables: %w", err)
		}

		if len(data.Topics) > 0 {
			if err := tx.Create(&data.Topics).Error; err != nil {
				return fmt.Errorf("error inserting topics: %w", err)
			}
		}

		users := make([]models.User, 0, len(data.Users))
		for _, u := range data.Users {
			users = append(users, models.User{Username: u.Username, Name: u.Name, AvatarURL: u.AvatarURL})
		}
		if len(users) > 0 {
			if err := tx.Create(&users).Error; err != nil {
				return fmt.Errorf("error inserting users: %w", err)
			}
		}

		articles := make([]models.Article, 0, len(data.Articles))
		for _, a := range data.Articles {
			articles = append(articles, models.Article{
				Title:         a.Title,
				Topic:         a.Topic,
				Author:        a.Author,
				Body:          a.Body,
				CreatedAt:     a.CreatedAt,
				Votes:         a.Votes,
				ArticleImgURL: a.ArticleImgURL,
			})
		}
		if len(articles) > 0 {
			if err := tx.Create(&articles).Error; err != nil {
				return fmt.Errorf("error inserting articles: %w", err)
			}
		}

		comments := make([]models.Comment, 0, len(data.Comments))
		for _, c := range data.Comments {
			comments = append(comments, models.Comment{
				Body:      c.Body,
				Votes:     c.Votes,
				Author:    c.Author,
				ArticleID: articles[c.Article-1].ArticleID,
				CreatedAt: c.CreatedAt,
			})
		}
		if len(comments) > 0 {
			if err := tx.Create(&comments).Error; err != nil {
				return fmt.Errorf("error inserting comments: %w", err)
			}
		}

		logger.Info("database seeded",
			zap.Int("topics", len(data.Topics)),
			zap.Int("users", len(users)),
			zap.Int("articles", len(articles)),
			zap.Int("comments", len(comments)),
		)
		return nil
	})
}
