package blog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	surrealdb "github.com/surrealdb/surrealdb.go"
	"go.opentelemetry.io/otel/attribute"

	"github.com/zisth/zisthcom/internal/telemetry/tracing"
)

const postsTable = "posts"

var _ postStore = (*Repo)(nil)

// Repo is the content store client: plain CRUD over the posts collection in
// the remote document database, no business rules. Every call round-trips to
// the store, there is no caching layer that could serve stale reads.
type Repo struct {
	db *surrealdb.DB
}

func NewRepo(db *surrealdb.DB) *Repo {
	return &Repo{
		db: db,
	}
}

// ListAll returns all posts, newest created_at first
func (r *Repo) ListAll(ctx context.Context) ([]*Post, error) {
	_, span := tracing.GlobalTracer.Start(ctx, "postsRepo.ListAll")
	defer span.End()

	res, err := r.db.Query(
		fmt.Sprintf("SELECT * FROM %s ORDER BY created_at DESC;", postsTable),
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrStoreUnavailable, err)
	}

	posts, err := surrealdb.SmartUnmarshal[[]Post](res, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrStoreUnavailable, err)
	}

	return toPostPointers(posts), nil
}

// GetByID returns the post with the given id, or nil when no such
// document exists (absence is not an error)
func (r *Repo) GetByID(ctx context.Context, id string) (*Post, error) {
	_, span := tracing.GlobalTracer.Start(ctx, "postsRepo.GetByID")
	span.SetAttributes(attribute.String("id", id))
	defer span.End()

	res, err := r.db.Select(id)
	if err != nil {
		if errors.Is(err, surrealdb.ErrNoRow) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %s", ErrStoreUnavailable, err)
	}

	posts, err := surrealdb.SmartUnmarshal[[]Post](res, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrStoreUnavailable, err)
	}
	if len(posts) == 0 {
		return nil, nil
	}

	return &posts[0], nil
}

// Create stores a new post, the store assigns the record id
func (r *Repo) Create(ctx context.Context, post *Post) (*Post, error) {
	_, span := tracing.GlobalTracer.Start(ctx, "postsRepo.Create")
	defer span.End()

	data, err := postData(post)
	if err != nil {
		return nil, err
	}
	delete(data, "id")

	res, err := r.db.Create(postsTable, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrStoreUnavailable, err)
	}

	created, err := surrealdb.SmartUnmarshal[[]Post](res, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrStoreUnavailable, err)
	}
	if len(created) == 0 {
		return nil, fmt.Errorf("%w: create returned no document", ErrStoreUnavailable)
	}

	log.Tracef("new post %s: [%s] added", created[0].ID, created[0].Title)

	return &created[0], nil
}

// UpdateByID overwrites the full document at the given id. The id is
// re-checked right before the write, a vanished document is reported as
// ErrPostNotFound rather than silently recreated.
func (r *Repo) UpdateByID(ctx context.Context, id string, post *Post) (*Post, error) {
	_, span := tracing.GlobalTracer.Start(ctx, "postsRepo.UpdateByID")
	span.SetAttributes(attribute.String("id", id))
	defer span.End()

	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: %s", ErrPostNotFound, id)
	}

	data, err := postData(post)
	if err != nil {
		return nil, err
	}
	data["id"] = id

	res, err := r.db.Update(id, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrStoreUnavailable, err)
	}

	updated, err := surrealdb.SmartUnmarshal[[]Post](res, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrStoreUnavailable, err)
	}
	if len(updated) == 0 {
		return nil, fmt.Errorf("%w: update returned no document", ErrStoreUnavailable)
	}

	return &updated[0], nil
}

// DeleteByID removes the document at the given id and reports whether
// anything existed there; deleting an absent id is not an error
func (r *Repo) DeleteByID(ctx context.Context, id string) (bool, error) {
	_, span := tracing.GlobalTracer.Start(ctx, "postsRepo.DeleteByID")
	span.SetAttributes(attribute.String("id", id))
	defer span.End()

	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, nil
	}

	if _, err := r.db.Delete(id); err != nil {
		return false, fmt.Errorf("%w: %s", ErrStoreUnavailable, err)
	}

	log.Tracef("post %s deleted", id)

	return true, nil
}

// postData converts a post into the generic document form the store client
// expects
func postData(post *Post) (map[string]any, error) {
	serialized, err := json.Marshal(post)
	if err != nil {
		return nil, fmt.Errorf("serialize post: %w", err)
	}
	var data map[string]any
	if err := json.Unmarshal(serialized, &data); err != nil {
		return nil, fmt.Errorf("serialize post: %w", err)
	}
	return data, nil
}

func toPostPointers(posts []Post) []*Post {
	result := make([]*Post, 0, len(posts))
	for i := range posts {
		result = append(result, &posts[i])
	}
	return result
}
