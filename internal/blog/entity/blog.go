package entity

// BlogPost is the inbound representation of a blog to be created.
//
// Pointer fields distinguish an absent value from an empty one.
type BlogPost struct {
	Title     *string
	Body      *string
	Published *bool
}

// ListFilter narrows a blog listing.
type ListFilter struct {
	Limit     int64
	Published bool
	Sort      *string
}

const (
	DefaultListLimit     int64 = 10
	DefaultListPublished       = true
)
