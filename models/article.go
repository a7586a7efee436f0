package models

import (
	"time"
)

// Article maps the articles table. CommentCount is never stored; it is
// filled by the aggregate select in the repository and is read-only.
type Article struct {
	ArticleID     int64     `json:"article_id" gorm:"primaryKey;autoIncrement"`
	Title         string    `json:"title" gorm:"not null"`
	Body          string    `json:"body" gorm:"not null"`
	Topic         string    `json:"topic" gorm:"not null"`
	Author        string    `json:"author" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	Votes         int64     `json:"votes" gorm:"not null;default:0"`
	ArticleImgURL string    `json:"article_img_url" gorm:"column:article_img_url;default:''"`
	CommentCount  int64     `json:"comment_count" gorm:"->;-:migration"`
}

// ArticleSummary is the list-view row: every article column except body.
type ArticleSummary struct {
	ArticleID     int64     `json:"article_id"`
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	Author        string    `json:"author"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int64     `json:"votes"`
	ArticleImgURL string    `json:"article_img_url" gorm:"column:article_img_url"`
	CommentCount  int64     `json:"comment_count"`
}
