package helper

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"news-forum-api/models"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/go-playground/validator.v9"
)

func newTestContext(method, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestGetStatusCode(t *testing.T) {
	h := NewHTTPHelper(zap.NewNop())

	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"not found", models.NotFound("article", 7), http.StatusNotFound, "article: 7 not found"},
		{"wrapped not found", fmt.Errorf("tx: %w", models.NotFound("user", "ghost")), http.StatusNotFound, "user: ghost not found"},
		{"invalid order", models.ErrorInvalidOrder{Resource: "articles"}, http.StatusBadRequest, "Articles can only be ordered asc or desc"},
		{"invalid input", models.InvalidInput("p must be positive"), http.StatusBadRequest, "Invalid input"},
		{"text representation", &pgconn.PgError{Code: "22P02"}, http.StatusBadRequest, "Invalid input"},
		{"not null", &pgconn.PgError{Code: "23502"}, http.StatusBadRequest, "Invalid input"},
		{"unique", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), http.StatusBadRequest, "Invalid input"},
		{"out of range", &pgconn.PgError{Code: "22003"}, http.StatusBadRequest, "Invalid input"},
		{"foreign key", &pgconn.PgError{Code: "23503"}, http.StatusNotFound, "Not found"},
		{"other pg error", &pgconn.PgError{Code: "53300", Message: "too many connections"}, http.StatusInternalServerError, ": too many connections (SQLSTATE 53300)"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := h.GetStatusCode(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.msg, msg)
		})
	}
}

func TestGetStatusCodeValidationErrors(t *testing.T) {
	h := NewHTTPHelper(zap.NewNop())

	err := h.Validate.Struct(models.CreateCommentRequest{Username: "lurker"})
	require.Error(t, err)

	status, msg := h.GetStatusCode(err)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid input", msg)

	var validationErrors validator.ValidationErrors
	require.True(t, errors.As(err, &validationErrors))
	assert.Equal(t, map[string][]string{"body": {"body is a required field"}}, h.TranslateErrors(validationErrors))
}

func TestSendError(t *testing.T) {
	h := NewHTTPHelper(zap.NewNop())
	c, w := newTestContext(http.MethodGet, "")

	h.SendError(c, models.NotFound("topic", "dogs"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"msg":"topic: dogs not found"}`, w.Body.String())
	assert.True(t, c.IsAborted())
}

func TestSendList(t *testing.T) {
	h := NewHTTPHelper(zap.NewNop())
	c, w := newTestContext(http.MethodGet, "")

	h.SendList(c, "articles", []string{}, 12)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"articles":[],"total_count":12}`, w.Body.String())
}

func TestBindJSON(t *testing.T) {
	h := NewHTTPHelper(zap.NewNop())

	c, _ := newTestContext(http.MethodPost, `{"slug":"cooking","description":"food"}`)
	var req models.CreateTopicRequest
	require.NoError(t, h.BindJSON(c, &req))
	assert.Equal(t, "cooking", req.Slug)

	c, _ = newTestContext(http.MethodPost, `{"slug":"cooking"}`)
	req = models.CreateTopicRequest{}
	assert.Error(t, h.BindJSON(c, &req))

	c, _ = newTestContext(http.MethodPost, `{not json`)
	assert.IsType(t, models.ErrorInvalidInput{}, h.BindJSON(c, &req))

	c, _ = newTestContext(http.MethodPost, `{"author":"a","title":"t","body":"b","topic":"x","article_img_url":"not a url"}`)
	var article models.CreateArticleRequest
	assert.Error(t, h.BindJSON(c, &article))
}

func TestBindStrictJSON(t *testing.T) {
	h := NewHTTPHelper(zap.NewNop())

	tests := []struct {
		name string
		body string
		ok   bool
	}{
		{"valid", `{"inc_votes": -3}`, true},
		{"zero is a valid delta", `{"inc_votes": 0}`, true},
		{"missing key", `{}`, false},
		{"unknown key", `{"not a valid key": 100}`, false},
		{"extra key", `{"inc_votes": 1, "votes": 5}`, false},
		{"string value", `{"inc_votes": "not-a-valid-value"}`, false},
		{"fractional value", `{"inc_votes": 1.5}`, false},
		{"empty body", ``, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext(http.MethodPatch, tt.body)
			var req models.VotesRequest
			err := h.BindStrictJSON(c, &req)
			if tt.ok {
				require.NoError(t, err)
				assert.NotNil(t, req.IncVotes)
				return
			}
			status, _ := h.GetStatusCode(err)
			assert.Equal(t, http.StatusBadRequest, status)
		})
	}
}

func TestParseID(t *testing.T) {
	h := NewHTTPHelper(zap.NewNop())
	c, _ := newTestContext(http.MethodGet, "")

	c.Params = gin.Params{{Key: "article_id", Value: "42"}}
	id, err := h.ParseID(c, "article_id")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	c.Params = gin.Params{{Key: "article_id", Value: "seven';--"}}
	_, err = h.ParseID(c, "article_id")
	assert.IsType(t, models.ErrorInvalidInput{}, err)
}

func TestUnderscore(t *testing.T) {
	assert.Equal(t, "article_img_url", Underscore("ArticleImgURL"))
	assert.Equal(t, "inc_votes", Underscore("IncVotes"))
	assert.Equal(t, "inc_votes", Underscore("inc_votes"))
	assert.Equal(t, "body", Underscore("body"))
}
