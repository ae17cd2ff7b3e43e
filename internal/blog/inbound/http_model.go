package inbound

type CreateBlogRequest struct {
	Title     *string `json:"title" validate:"required"`
	Body      *string `json:"body" validate:"required"`
	Published *bool   `json:"published"`
}
