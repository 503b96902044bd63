package blog

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrPostNotFound     = errors.New("blog post not found")
	ErrStoreUnavailable = errors.New("content store unavailable")
	// ErrPostTooLarge: the serialized document would cross the store size
	// ceiling, the user can remove content or use smaller images
	ErrPostTooLarge = errors.New("blog post too large")
	// ErrSaveNotVerified: the write reported success, but the post could not
	// be read back afterwards
	ErrSaveNotVerified = errors.New("blog post save could not be verified")
)

// maximum serialized size of a single post document in the store
const maxPostBytes = 900 * 1024

const defaultAuthor = "Admin"

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type Post struct {
	ID            string    `json:"id,omitempty"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Excerpt       string    `json:"excerpt,omitempty"`
	Author        string    `json:"author"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Published     bool      `json:"published"`
	FeaturedImage string    `json:"featured_image,omitempty"`
	Tags          []string  `json:"tags,omitempty"`
}
