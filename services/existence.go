package services

import (
	"context"
	"strconv"
	"strings"

	"news-forum-api/models"
	"news-forum-api/repositories"
)

// ExistenceValidator guards mutations and allow-lists listing parameters.
//
// Without a field, value must name a column of collection; no query runs.
// With a field, a single targeted existence query decides. Either way a miss
// is reported as models.ErrorNotFound for the collection's singular name.
type ExistenceValidator interface {
	Exists(ctx context.Context, collection, value string, field ...string) (bool, error)
}

type existenceValidator struct {
	repo repositories.ExistenceRepository
}

func NewExistenceValidator(repo repositories.ExistenceRepository) ExistenceValidator {
	return &existenceValidator{repo: repo}
}

func (v *existenceValidator) Exists(ctx context.Context, collection, value string, field ...string) (bool, error) {
	c, ok := repositories.LookupCollection(collection)
	if !ok {
		return false, models.InvalidInput("unknown collection %q", collection)
	}

	if len(field) == 0 || field[0] == "" {
		if err := columnExists(c, value); err != nil {
			return false, err
		}
		return true, nil
	}

	column := field[0]
	if !c.HasColumn(column) {
		return false, models.InvalidInput("unknown column %s.%s", c.Table, column)
	}

	arg, err := coerce(c, column, value)
	if err != nil {
		return false, err
	}

	found, err := v.repo.RowExists(ctx, c.Table, column, arg)
	if err != nil {
		return false, err
	}
	if !found {
		return false, models.NotFound(c.Singular, value)
	}
	return true, nil
}

func columnExists(c repositories.Collection, name string) error {
	if !c.HasColumn(name) {
		return models.NotFound(c.Singular, name)
	}
	return nil
}

// coerce turns numeric-looking values into int64 for integer columns. A
// non-numeric value for an integer column (article_id, comment_id, ...) is
// malformed input rather than a miss.
func coerce(c repositories.Collection, column, value string) (interface{}, error) {
	if !c.IsNumeric(column) {
		return value, nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return nil, models.InvalidInput("%s must be an integer, got %q", column, value)
	}
	return n, nil
}
