package services

import (
	"context"
	"fmt"
	"sync"

	"news-forum-api/models"
	"news-forum-api/repositories"

	"gorm.io/gorm"
)

type fakeStore struct {
	mu    sync.Mutex
	repos repositories.Repositories
	txs   int
}

func (s *fakeStore) Repositories() repositories.Repositories {
	return s.repos
}

func (s *fakeStore) Transaction(ctx context.Context, fn func(repos repositories.Repositories) error) error {
	s.mu.Lock()
	s.txs++
	s.mu.Unlock()
	return fn(s.repos)
}

// fakeExistence answers RowExists from a table -> column -> value set.
type fakeExistence struct {
	mu    sync.Mutex
	rows  map[string]map[string]map[interface{}]bool
	calls []string
	err   error
	// failTable limits err to one table when set
	failTable string
}

func newFakeExistence() *fakeExistence {
	return &fakeExistence{rows: map[string]map[string]map[interface{}]bool{}}
}

func (f *fakeExistence) add(table, column string, value interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.rows[table] == nil {
		f.rows[table] = map[string]map[interface{}]bool{}
	}
	if f.rows[table][column] == nil {
		f.rows[table][column] = map[interface{}]bool{}
	}
	f.rows[table][column][value] = true
}

func (f *fakeExistence) remove(table, column string, value interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.rows[table][column], value)
}

func (f *fakeExistence) RowExists(ctx context.Context, table, column string, value interface{}) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, fmt.Sprintf("%s.%s=%v", table, column, value))
	if f.err != nil && (f.failTable == "" || f.failTable == table) {
		return false, f.err
	}
	return f.rows[table][column][value], nil
}

type fakeArticles struct {
	mu       sync.Mutex
	ex       *fakeExistence
	articles map[int64]*models.Article
	comments map[int64]int64
	nextID   int64
	lastList models.ListQuery
	listed   bool
	// vanishOnVote drops the article right after its votes change
	vanishOnVote bool
}

func newFakeArticles(ex *fakeExistence) *fakeArticles {
	return &fakeArticles{ex: ex, articles: map[int64]*models.Article{}, comments: map[int64]int64{}, nextID: 1}
}

func (f *fakeArticles) put(a models.Article) {
	f.mu.Lock()
	f.articles[a.ArticleID] = &a
	if a.ArticleID >= f.nextID {
		f.nextID = a.ArticleID + 1
	}
	f.mu.Unlock()
	f.ex.add("articles", "article_id", a.ArticleID)
}

func (f *fakeArticles) Create(ctx context.Context, article *models.Article) error {
	f.mu.Lock()
	article.ArticleID = f.nextID
	f.nextID++
	copied := *article
	f.articles[article.ArticleID] = &copied
	f.mu.Unlock()
	f.ex.add("articles", "article_id", article.ArticleID)
	return nil
}

func (f *fakeArticles) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.articles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *a
	copied.CommentCount = f.comments[id]
	return &copied, nil
}

func (f *fakeArticles) GetList(ctx context.Context, q models.ListQuery) ([]models.ArticleSummary, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastList = q
	f.listed = true
	return []models.ArticleSummary{}, int64(len(f.articles)), nil
}

func (f *fakeArticles) IncrementVotes(ctx context.Context, id int64, delta int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.articles[id]
	if !ok {
		return 0, nil
	}
	a.Votes += delta
	if f.vanishOnVote {
		delete(f.articles, id)
	}
	return 1, nil
}

func (f *fakeArticles) Delete(ctx context.Context, id int64) (int64, error) {
	f.mu.Lock()
	_, ok := f.articles[id]
	delete(f.articles, id)
	f.mu.Unlock()
	if !ok {
		return 0, nil
	}
	f.ex.remove("articles", "article_id", id)
	return 1, nil
}

type fakeComments struct {
	mu       sync.Mutex
	ex       *fakeExistence
	comments map[int64]*models.Comment
	nextID   int64
	lastList models.ListQuery
	listed   bool
}

func newFakeComments(ex *fakeExistence) *fakeComments {
	return &fakeComments{ex: ex, comments: map[int64]*models.Comment{}, nextID: 1}
}

func (f *fakeComments) put(c models.Comment) {
	f.mu.Lock()
	f.comments[c.CommentID] = &c
	if c.CommentID >= f.nextID {
		f.nextID = c.CommentID + 1
	}
	f.mu.Unlock()
	f.ex.add("comments", "comment_id", c.CommentID)
}

func (f *fakeComments) Create(ctx context.Context, comment *models.Comment) error {
	f.mu.Lock()
	comment.CommentID = f.nextID
	f.nextID++
	copied := *comment
	f.comments[comment.CommentID] = &copied
	f.mu.Unlock()
	f.ex.add("comments", "comment_id", comment.CommentID)
	return nil
}

func (f *fakeComments) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.comments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *c
	return &copied, nil
}

func (f *fakeComments) GetList(ctx context.Context, q models.ListQuery) ([]models.Comment, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastList = q
	f.listed = true
	out := []models.Comment{}
	for _, c := range f.comments {
		if c.ArticleID == q.ArticleID {
			out = append(out, *c)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeComments) IncrementVotes(ctx context.Context, id int64, delta int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.comments[id]
	if !ok {
		return 0, nil
	}
	c.Votes += delta
	return 1, nil
}

func (f *fakeComments) Delete(ctx context.Context, id int64) (int64, error) {
	f.mu.Lock()
	_, ok := f.comments[id]
	delete(f.comments, id)
	f.mu.Unlock()
	if !ok {
		return 0, nil
	}
	f.ex.remove("comments", "comment_id", id)
	return 1, nil
}

type fakeTopics struct {
	topics []models.Topic
	err    error
}

func (f *fakeTopics) Create(ctx context.Context, topic *models.Topic) error {
	if f.err != nil {
		return f.err
	}
	f.topics = append(f.topics, *topic)
	return nil
}

func (f *fakeTopics) GetAll(ctx context.Context) ([]models.Topic, error) {
	return f.topics, nil
}

type fakeUsers struct {
	users []models.User
}

func (f *fakeUsers) GetAll(ctx context.Context) ([]models.User, error) {
	return f.users, nil
}

func (f *fakeUsers) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			copied := u
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fixture struct {
	store    *fakeStore
	ex       *fakeExistence
	articles *fakeArticles
	comments *fakeComments
}

// newFixture seeds one topic, two users, article 1 with comment 1.
func newFixture() *fixture {
	ex := newFakeExistence()
	articles := newFakeArticles(ex)
	comments := newFakeComments(ex)

	ex.add("topics", "slug", "mitch")
	ex.add("users", "username", "butter_bridge")
	ex.add("users", "username", "lurker")

	articles.put(models.Article{ArticleID: 1, Title: "first", Body: "body", Topic: "mitch", Author: "butter_bridge", Votes: 100})
	comments.put(models.Comment{CommentID: 1, Body: "nice", Author: "lurker", ArticleID: 1, Votes: 16})
	articles.comments[1] = 1

	store := &fakeStore{repos: repositories.Repositories{
		Articles:  articles,
		Comments:  comments,
		Topics:    &fakeTopics{},
		Users:     &fakeUsers{},
		Existence: ex,
	}}

	return &fixture{store: store, ex: ex, articles: articles, comments: comments}
}
