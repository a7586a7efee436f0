package repositories

// Collection describes one table the existence checks and listing builder are
// allowed to touch. Column names here are the only identifiers ever
// interpolated into SQL.
type Collection struct {
	Table    string
	Singular string
	IDColumn string
	Columns  map[string]struct{}
	Numeric  map[string]struct{}
}

func (c Collection) HasColumn(name string) bool {
	_, ok := c.Columns[name]
	return ok
}

// IsNumeric reports whether column is stored as an integer.
func (c Collection) IsNumeric(name string) bool {
	_, ok := c.Numeric[name]
	return ok
}

func columns(names ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

const (
	CollectionTopics   = "topics"
	CollectionArticles = "articles"
	CollectionComments = "comments"
	CollectionUsers    = "users"
)

var Collections = map[string]Collection{
	CollectionTopics: {
		Table:    "topics",
		Singular: "topic",
		IDColumn: "slug",
		Columns:  columns("slug", "description"),
	},
	CollectionArticles: {
		Table:    "articles",
		Singular: "article",
		IDColumn: "article_id",
		Columns:  columns("article_id", "title", "body", "topic", "author", "created_at", "votes", "article_img_url"),
		Numeric:  columns("article_id", "votes"),
	},
	CollectionComments: {
		Table:    "comments",
		Singular: "comment",
		IDColumn: "comment_id",
		Columns:  columns("comment_id", "body", "votes", "author", "article_id", "created_at"),
		Numeric:  columns("comment_id", "votes", "article_id"),
	},
	CollectionUsers: {
		Table:    "users",
		Singular: "user",
		IDColumn: "username",
		Columns:  columns("username", "name", "avatar_url"),
	},
}

// LookupCollection returns the allow-list entry for name.
func LookupCollection(name string) (Collection, bool) {
	c, ok := Collections[name]
	return c, ok
}
