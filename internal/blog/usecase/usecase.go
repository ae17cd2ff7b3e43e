package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/shandysiswandi/goblog/internal/blog/entity"
)

//nolint:gochecknoglobals // fixed placeholder data
var comments = []string{"comment 2", "comment 1"}

type Usecase struct{}

func New() *Usecase {
	return &Usecase{}
}

// Home returns the landing message of the blog service.
func (u *Usecase) Home(ctx context.Context) string {
	return "blog list"
}

// List describes which blogs a listing with the given filter would return.
// The sort key is accepted but does not change the result.
func (u *Usecase) List(ctx context.Context, filter entity.ListFilter) string {
	if filter.Sort != nil {
		slog.DebugContext(ctx, "blog listing sort key ignored", "sort", *filter.Sort)
	}

	if filter.Published {
		return fmt.Sprintf("%d pubished blogs from the db", filter.Limit)
	}
	return fmt.Sprintf("%d blogs from the db", filter.Limit)
}

func (u *Usecase) Unpublished(ctx context.Context) string {
	return "all the unpublished blogs"
}

// Show echoes the requested id; no existence check is made.
func (u *Usecase) Show(ctx context.Context, id int64) int64 {
	return id
}

// Comments returns the comment set of a blog, sorted. Every id has the same set.
func (u *Usecase) Comments(ctx context.Context, id int64) []string {
	out := slices.Clone(comments)
	slices.Sort(out)
	return out
}

// Create confirms the creation of a post. Nothing is stored.
func (u *Usecase) Create(ctx context.Context, in CreateInput) CreateResult {
	var title string
	if in.Post.Title != nil {
		title = *in.Post.Title
	}

	slog.InfoContext(ctx, "blog accepted", "title", title, "published", in.Post.Published)

	return CreateResult{Title: title}
}

func (r CreateResult) Confirmation() string {
	return "Blog is created with tittle as " + r.Title
}
