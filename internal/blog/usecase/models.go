package usecase

import "github.com/shandysiswandi/goblog/internal/blog/entity"

type CreateInput struct {
	Post entity.BlogPost
}

type CreateResult struct {
	Title string
}
