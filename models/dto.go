package models

type CreateTopicRequest struct {
	Slug        string `json:"slug" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type CreateArticleRequest struct {
	Author        string `json:"author" validate:"required"`
	Title         string `json:"title" validate:"required"`
	Body          string `json:"body" validate:"required"`
	Topic         string `json:"topic" validate:"required"`
	ArticleImgURL string `json:"article_img_url" validate:"omitempty,url"`
}

type CreateCommentRequest struct {
	Username string `json:"username" validate:"required"`
	Body     string `json:"body" validate:"required"`
}

// VotesRequest carries a signed delta. A nil IncVotes means the key was absent.
type VotesRequest struct {
	IncVotes *int64 `json:"inc_votes" validate:"required"`
}

// ListParams holds the raw listing query string. Values stay strings so the
// query builder can reject malformed input with one consistent error.
type ListParams struct {
	SortBy string `form:"sort_by"`
	Order  string `form:"order"`
	Topic  string `form:"topic"`
	Limit  string `form:"limit"`
	Page   string `form:"p"`
}

// ListQuery is the validated, interpolation-safe description of a listing.
// OrderBy and TieBreak only ever hold values taken from the column allow-list.
type ListQuery struct {
	OrderBy   string
	Direction string
	TieBreak  string
	Topic     string
	ArticleID int64
	Limit     int
	Offset    int
}
