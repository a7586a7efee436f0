package models

import "time"

type Comment struct {
	CommentID int64     `json:"comment_id" gorm:"primaryKey;autoIncrement"`
	Body      string    `json:"body" gorm:"not null"`
	Votes     int64     `json:"votes" gorm:"not null;default:0"`
	Author    string    `json:"author" gorm:"not null"`
	ArticleID int64     `json:"article_id" gorm:"not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}
