package blog

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/zisth/zisthcom/internal/telemetry/tracing"
)

//go:generate mockgen -source=service.go -destination=service_mocks_test.go -package=blog

type postStore interface {
	ListAll(ctx context.Context) ([]*Post, error)
	GetByID(ctx context.Context, id string) (*Post, error)
	Create(ctx context.Context, post *Post) (*Post, error)
	UpdateByID(ctx context.Context, id string, post *Post) (*Post, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
}

type contentNormalizer interface {
	NormalizeContentImages(html string) (string, error)
}

// Service is the single entry point the reader and editor surfaces go
// through: it validates drafts, normalizes inline images, derives the
// excerpt, manages identifiers and timestamps, and orchestrates the content
// store client
type Service struct {
	store      postStore
	normalizer contentNormalizer
	// ability to inject the clock (for unit testing timestamps)
	NowFunc func() time.Time
}

func NewService(store postStore, normalizer contentNormalizer) *Service {
	return &Service{
		store:      store,
		normalizer: normalizer,
		NowFunc: func() time.Time {
			// the store orders posts by the serialized timestamp, keep it UTC
			return time.Now().UTC()
		},
	}
}

// Save persists a draft, either creating a new post or fully overwriting an
// existing one. On update created_at is preserved from the stored record; in
// both cases updated_at is set to the save time. The write is verified by
// re-reading the id afterwards, so a silently dropped document surfaces as
// ErrSaveNotVerified instead of a false success.
func (s *Service) Save(ctx context.Context, draft *Post) (*Post, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "postsService.Save")
	defer span.End()

	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	post := *draft

	normalized, err := s.normalizer.NormalizeContentImages(post.Content)
	if err != nil {
		// oversized images that failed to compress are kept as-is, the save
		// itself continues
		log.Warnf("save post, some inline images kept uncompressed: %s", err)
	}
	post.Content = normalized

	if strings.TrimSpace(post.Excerpt) == "" {
		post.Excerpt = GenerateExcerpt(post.Content)
	}
	if strings.TrimSpace(post.Author) == "" {
		post.Author = defaultAuthor
	}

	now := s.NowFunc()
	var saved *Post
	if post.ID != "" {
		existing, err := s.store.GetByID(ctx, post.ID)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, fmt.Errorf("%w: %s", ErrPostNotFound, post.ID)
		}

		post.CreatedAt = existing.CreatedAt
		post.UpdatedAt = now

		if err := checkSizeCeiling(&post); err != nil {
			return nil, err
		}

		saved, err = s.store.UpdateByID(ctx, post.ID, &post)
		if err != nil {
			return nil, err
		}
	} else {
		post.CreatedAt = now
		post.UpdatedAt = now

		if err := checkSizeCeiling(&post); err != nil {
			return nil, err
		}

		saved, err = s.store.Create(ctx, &post)
		if err != nil {
			return nil, err
		}
	}

	// the store truncates nothing partially, but a document crossing its
	// internal limits can be dropped even though the write call reported
	// success; re-read to be sure the post actually landed
	verified, err := s.store.GetByID(ctx, saved.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSaveNotVerified, err)
	}
	if verified == nil {
		return nil, fmt.Errorf("%w: post %s absent after write", ErrSaveNotVerified, saved.ID)
	}

	log.Tracef("post %s: [%s] saved", saved.ID, saved.Title)

	return saved, nil
}

// ListAll returns every post, drafts included, newest first
func (s *Service) ListAll(ctx context.Context) ([]*Post, error) {
	return s.store.ListAll(ctx)
}

// ListPublished returns only posts visible to unauthenticated readers,
// newest created_at first
func (s *Service) ListPublished(ctx context.Context) ([]*Post, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "postsService.ListPublished")
	defer span.End()

	all, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	published := make([]*Post, 0, len(all))
	for _, post := range all {
		if post.Published {
			published = append(published, post)
		}
	}

	sort.SliceStable(published, func(i, j int) bool {
		return published[i].CreatedAt.After(published[j].CreatedAt)
	})

	return published, nil
}

// GetByID returns the post at the given id, or nil when absent
func (s *Service) GetByID(ctx context.Context, id string) (*Post, error) {
	return s.store.GetByID(ctx, id)
}

// Remove deletes the post at the given id; removing a nonexistent id
// reports false and no error
func (s *Service) Remove(ctx context.Context, id string) (bool, error) {
	return s.store.DeleteByID(ctx, id)
}

func validateDraft(draft *Post) error {
	if strings.TrimSpace(draft.Title) == "" {
		return &ValidationError{Field: "title", Message: "title must not be empty"}
	}
	if plainText(draft.Content) == "" {
		return &ValidationError{Field: "content", Message: "content must not be empty"}
	}
	return nil
}

func checkSizeCeiling(post *Post) error {
	serialized, err := json.Marshal(post)
	if err != nil {
		return fmt.Errorf("serialize post: %w", err)
	}
	if len(serialized) > maxPostBytes {
		return fmt.Errorf(
			"%w: document is %dKB, ceiling is %dKB, remove content or use smaller images",
			ErrPostTooLarge, len(serialized)/1024, maxPostBytes/1024,
		)
	}
	return nil
}
