package news

import "errors"

var (
	ErrArticleNotFound = errors.New("news article not found")
)
