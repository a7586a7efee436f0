package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"news-forum-api/models"
	"news-forum-api/repositories"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	DefaultSortBy = "created_at"
	DefaultOrder  = "desc"
	DefaultLimit  = 10
	DefaultPage   = 1
)

// ListResource describes one listing endpoint: which collection it reads,
// the name used in order errors, and sort keys that are not literal columns.
type ListResource struct {
	Collection string
	Name       string
	Synthetic  map[string]string
}

var (
	ArticleListing = ListResource{
		Collection: repositories.CollectionArticles,
		Name:       "articles",
		Synthetic:  map[string]string{"comment_count": "comment_count"},
	}
	CommentListing = ListResource{
		Collection: repositories.CollectionComments,
		Name:       "comments",
	}
)

// BuildListQuery validates sort, order and pagination parameters and turns
// them into a ListQuery. Filters that need the database (topic, parent
// article) are checked by the calling service.
func BuildListQuery(res ListResource, params models.ListParams) (*models.ListQuery, error) {
	c, ok := repositories.LookupCollection(res.Collection)
	if !ok {
		return nil, models.InvalidInput("unknown collection %q", res.Collection)
	}

	direction, err := parseOrder(res, params.Order)
	if err != nil {
		return nil, err
	}

	orderBy, err := sortColumn(res, c, params.SortBy)
	if err != nil {
		return nil, err
	}

	limit, err := parseInt("limit", params.Limit, DefaultLimit, validation.Min(0))
	if err != nil {
		return nil, err
	}

	page, err := parseInt("p", params.Page, DefaultPage, validation.Required, validation.Min(1))
	if err != nil {
		return nil, err
	}

	if limit > 0 && page-1 > math.MaxInt/limit {
		return nil, models.InvalidInput("page %d of %d rows is out of range", page, limit)
	}

	return &models.ListQuery{
		OrderBy:   orderBy,
		Direction: direction,
		TieBreak:  fmt.Sprintf("%s.%s", c.Table, c.IDColumn),
		Topic:     params.Topic,
		Limit:     limit,
		Offset:    limit * (page - 1),
	}, nil
}

func parseOrder(res ListResource, raw string) (string, error) {
	order := strings.ToLower(strings.TrimSpace(raw))
	if order == "" {
		order = DefaultOrder
	}
	if err := validation.Validate(order, validation.In("asc", "desc")); err != nil {
		return "", models.ErrorInvalidOrder{Resource: res.Name}
	}
	return strings.ToUpper(order), nil
}

func sortColumn(res ListResource, c repositories.Collection, raw string) (string, error) {
	key := strings.TrimSpace(raw)
	if key == "" {
		key = DefaultSortBy
	}
	if expr, ok := res.Synthetic[key]; ok {
		return expr, nil
	}
	if err := columnExists(c, key); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s.%s", c.Table, key), nil
}

func parseInt(name, raw string, def int, rules ...validation.Rule) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, models.InvalidInput("%s must be an integer, got %q", name, raw)
	}
	if err := validation.Validate(n, rules...); err != nil {
		return 0, models.InvalidInput("%s: %v", name, err)
	}
	return n, nil
}
