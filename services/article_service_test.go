package services

import (
	"context"
	"sync"
	"testing"

	"news-forum-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetArticles(t *testing.T) {
	f := newFixture()
	svc := NewArticleService(f.store)

	_, total, err := svc.GetArticles(context.Background(), models.ListParams{Topic: "mitch", SortBy: "comment_count", Order: "asc"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "mitch", f.articles.lastList.Topic)
	assert.Equal(t, "comment_count", f.articles.lastList.OrderBy)
	assert.Equal(t, "ASC", f.articles.lastList.Direction)
}

func TestGetArticlesUnknownTopic(t *testing.T) {
	f := newFixture()
	svc := NewArticleService(f.store)

	_, _, err := svc.GetArticles(context.Background(), models.ListParams{Topic: "dogs"})
	assert.EqualError(t, err, "topic: dogs not found")
	assert.False(t, f.articles.listed)
}

func TestGetArticle(t *testing.T) {
	f := newFixture()
	svc := NewArticleService(f.store)

	article, err := svc.GetArticle(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), article.CommentCount)

	_, err = svc.GetArticle(context.Background(), 1688)
	assert.Equal(t, models.ErrorNotFound{Entity: "article", Value: int64(1688)}, err)
	assert.EqualError(t, err, "article: 1688 not found")
}

func TestCreateArticle(t *testing.T) {
	f := newFixture()
	svc := NewArticleService(f.store)

	article, err := svc.CreateArticle(context.Background(), models.CreateArticleRequest{
		Author: "lurker",
		Title:  "new",
		Body:   "text",
		Topic:  "mitch",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), article.ArticleID)
	assert.Equal(t, int64(0), article.CommentCount)
	assert.Equal(t, 1, f.store.txs)
}

func TestCreateArticleMissingParents(t *testing.T) {
	f := newFixture()
	svc := NewArticleService(f.store)

	_, err := svc.CreateArticle(context.Background(), models.CreateArticleRequest{Author: "ghost", Title: "t", Body: "b", Topic: "dogs"})
	assert.EqualError(t, err, "user: ghost not found")

	_, err = svc.CreateArticle(context.Background(), models.CreateArticleRequest{Author: "lurker", Title: "t", Body: "b", Topic: "dogs"})
	assert.EqualError(t, err, "topic: dogs not found")

	assert.Len(t, f.articles.articles, 1)
}

func TestUpdateArticleVotes(t *testing.T) {
	f := newFixture()
	svc := NewArticleService(f.store)

	article, err := svc.UpdateArticleVotes(context.Background(), 1, -150)
	require.NoError(t, err)
	assert.Equal(t, int64(-50), article.Votes)

	_, err = svc.UpdateArticleVotes(context.Background(), 99, 1)
	assert.EqualError(t, err, "article: 99 not found")
}

func TestUpdateArticleVotesArticleGoneBeforeReread(t *testing.T) {
	f := newFixture()
	f.articles.vanishOnVote = true
	svc := NewArticleService(f.store)

	_, err := svc.UpdateArticleVotes(context.Background(), 1, 5)
	assert.Equal(t, models.ErrorNotFound{Entity: "article", Value: int64(1)}, err)
}

func TestUpdateArticleVotesCommutes(t *testing.T) {
	f := newFixture()
	svc := NewArticleService(f.store)
	deltas := []int64{3, -7, 12, 1, -1, 40}

	var wg sync.WaitGroup
	for _, d := range deltas {
		wg.Add(1)
		go func(d int64) {
			defer wg.Done()
			_, err := svc.UpdateArticleVotes(context.Background(), 1, d)
			assert.NoError(t, err)
		}(d)
	}
	wg.Wait()

	article, err := svc.GetArticle(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(100+3-7+12+1-1+40), article.Votes)
}

func TestDeleteArticle(t *testing.T) {
	f := newFixture()
	svc := NewArticleService(f.store)

	require.NoError(t, svc.DeleteArticle(context.Background(), 1))

	_, err := svc.GetArticle(context.Background(), 1)
	assert.EqualError(t, err, "article: 1 not found")

	err = svc.DeleteArticle(context.Background(), 1)
	assert.EqualError(t, err, "article: 1 not found")
}
