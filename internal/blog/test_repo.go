package blog

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
)

var _ postStore = (*TestRepo)(nil)

// TestRepo is an in-memory stand-in for the content store, used in unit
// tests instead of a live database
type TestRepo struct {
	Posts map[string]*Post
	mutex sync.Mutex

	// when set, every call fails with this error
	ReturnError error
}

func NewTestRepo() *TestRepo {
	return &TestRepo{
		Posts: make(map[string]*Post),
	}
}

func (r *TestRepo) PostsCount() int {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return len(r.Posts)
}

func (r *TestRepo) ListAll(_ context.Context) ([]*Post, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.ReturnError != nil {
		return nil, r.ReturnError
	}

	posts := make([]*Post, 0, len(r.Posts))
	for id := range r.Posts {
		post := *r.Posts[id]
		posts = append(posts, &post)
	}

	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})

	return posts, nil
}

func (r *TestRepo) GetByID(_ context.Context, id string) (*Post, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.ReturnError != nil {
		return nil, r.ReturnError
	}

	stored, ok := r.Posts[id]
	if !ok {
		return nil, nil
	}

	post := *stored
	return &post, nil
}

func (r *TestRepo) Create(_ context.Context, post *Post) (*Post, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.ReturnError != nil {
		return nil, r.ReturnError
	}

	created := *post
	created.ID = fmt.Sprintf("%s:%s", postsTable, uuid.NewString())
	r.Posts[created.ID] = &created

	result := created
	return &result, nil
}

func (r *TestRepo) UpdateByID(_ context.Context, id string, post *Post) (*Post, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.ReturnError != nil {
		return nil, r.ReturnError
	}
	if _, ok := r.Posts[id]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrPostNotFound, id)
	}

	updated := *post
	updated.ID = id
	r.Posts[id] = &updated

	result := updated
	return &result, nil
}

func (r *TestRepo) DeleteByID(_ context.Context, id string) (bool, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.ReturnError != nil {
		return false, r.ReturnError
	}
	if _, ok := r.Posts[id]; !ok {
		return false, nil
	}

	delete(r.Posts, id)

	return true, nil
}
