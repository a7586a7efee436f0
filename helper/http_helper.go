package helper

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"news-forum-api/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gopkg.in/go-playground/validator.v9"
	en_translations "gopkg.in/go-playground/validator.v9/translations/en"
)

const (
	MsgPathNotFound = "Path not found"
	MsgNotFound     = "Not found"
)

// PostgreSQL error codes that mean the client sent bad data.
var invalidInputCodes = map[string]struct{}{
	"22P02": {}, // invalid_text_representation
	"23502": {}, // not_null_violation
	"23505": {}, // unique_violation
	"22003": {}, // numeric_value_out_of_range
}

const foreignKeyViolation = "23503"

// HTTPHelper shapes every response the API sends: success envelopes keyed by
// resource name and {"msg": ...} errors.
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
	Logger     *zap.Logger
}

func NewHTTPHelper(logger *zap.Logger) *HTTPHelper {
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")

	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		logger.Warn("register validation translations", zap.Error(err))
	}

	return &HTTPHelper{
		Validate:   validate,
		Translator: trans,
		Logger:     logger,
	}
}

// GetStatusCode maps an error to its HTTP status and client message.
func (u *HTTPHelper) GetStatusCode(err error) (int, string) {
	if err == nil {
		return http.StatusOK, ""
	}

	var notFound models.ErrorNotFound
	var invalidOrder models.ErrorInvalidOrder
	var invalidInput models.ErrorInvalidInput
	var validationErrors validator.ValidationErrors
	var pgErr *pgconn.PgError

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound, notFound.Error()
	case errors.As(err, &invalidOrder):
		return http.StatusBadRequest, invalidOrder.Error()
	case errors.As(err, &invalidInput), errors.As(err, &validationErrors):
		return http.StatusBadRequest, models.MsgInvalidInput
	case errors.As(err, &pgErr):
		if _, ok := invalidInputCodes[pgErr.Code]; ok {
			return http.StatusBadRequest, models.MsgInvalidInput
		}
		if pgErr.Code == foreignKeyViolation {
			return http.StatusNotFound, MsgNotFound
		}
	}

	return http.StatusInternalServerError, err.Error()
}

// SendError is the single place handlers hand failures to.
func (u *HTTPHelper) SendError(c *gin.Context, err error) {
	status, msg := u.GetStatusCode(err)

	fields := []zap.Field{
		zap.Int("status", status),
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Error(err),
	}
	var invalidInput models.ErrorInvalidInput
	if errors.As(err, &invalidInput) {
		fields = append(fields, zap.String("reason", invalidInput.Detail()))
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields = append(fields, zap.Any("fields", u.TranslateErrors(validationErrors)))
	}

	if status >= http.StatusInternalServerError {
		u.Logger.Error("request failed", fields...)
	} else {
		u.Logger.Debug("request rejected", fields...)
	}

	c.AbortWithStatusJSON(status, gin.H{"msg": msg})
}

// SendPathNotFound answers unmatched routes and methods.
func (u *HTTPHelper) SendPathNotFound(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"msg": MsgPathNotFound})
}

// SendSuccess wraps data in an envelope keyed by resource name.
func (u *HTTPHelper) SendSuccess(c *gin.Context, status int, key string, data interface{}) {
	c.JSON(status, gin.H{key: data})
}

// SendList sends a page of rows together with the unpaginated match count.
func (u *HTTPHelper) SendList(c *gin.Context, key string, data interface{}, total int64) {
	c.JSON(http.StatusOK, gin.H{
		key:           data,
		"total_count": total,
	})
}

func (u *HTTPHelper) SendNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// TranslateErrors renders validation failures keyed by json field name.
func (u *HTTPHelper) TranslateErrors(validationErrors validator.ValidationErrors) map[string][]string {
	errorResponse := map[string][]string{}
	errorTranslation := validationErrors.Translate(u.Translator)
	for _, err := range validationErrors {
		errKey := Underscore(err.Field())
		errorResponse[errKey] = append(errorResponse[errKey], errorTranslation[err.Namespace()])
	}
	return errorResponse
}

// BindJSON decodes the request body into obj and validates it.
func (u *HTTPHelper) BindJSON(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return models.InvalidInput("decode body: %v", err)
	}
	return u.Validate.Struct(obj)
}

// BindStrictJSON is BindJSON that also rejects keys obj does not declare.
func (u *HTTPHelper) BindStrictJSON(c *gin.Context, obj interface{}) error {
	if c.Request.Body == nil {
		return models.InvalidInput("empty body")
	}
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(obj); err != nil {
		return models.InvalidInput("decode body: %v", err)
	}
	return u.Validate.Struct(obj)
}

// ParseID reads an integer path parameter.
func (u *HTTPHelper) ParseID(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, models.InvalidInput("%s must be an integer, got %q", name, raw)
	}
	return id, nil
}
