package blog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/zisth/zisthcom/internal/auth"
	"github.com/zisth/zisthcom/internal/telemetry/metrics"
	"github.com/zisth/zisthcom/pkg"
)

type PostsResponse struct {
	Posts []*Post `json:"posts"`
	Total int     `json:"total"`
}

type savePostResponse struct {
	Saved *Post `json:"saved"`
}

type postsService interface {
	Save(ctx context.Context, draft *Post) (*Post, error)
	ListAll(ctx context.Context) ([]*Post, error)
	ListPublished(ctx context.Context) ([]*Post, error)
	GetByID(ctx context.Context, id string) (*Post, error)
	Remove(ctx context.Context, id string) (bool, error)
}

type Handler struct {
	service      postsService
	loginChecker auth.Checker
	metrics      *metrics.Manager
}

func NewHandler(
	service postsService,
	loginChecker auth.Checker,
	metrics *metrics.Manager,
) *Handler {
	return &Handler{
		service:      service,
		loginChecker: loginChecker,
		metrics:      metrics,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/blog/published", handler.handlePublished).Methods("GET").Name("published-posts")
	router.HandleFunc("/blog/post/{id}", handler.handleGetPost).Methods("GET").Name("get-post")
	router.HandleFunc("/blog/all", handler.handleAll).Methods("GET").Name("all-posts")
	router.HandleFunc("/blog/save", handler.handleSave).Methods("POST", "OPTIONS").Name("save-post")
	router.HandleFunc("/blog/delete/{id}", handler.handleDelete).Methods("DELETE", "OPTIONS").Name("delete-post")
}

func (handler *Handler) handlePublished(w http.ResponseWriter, r *http.Request) {
	posts, err := handler.service.ListPublished(r.Context())
	if err != nil {
		log.Errorf("get published posts: %s", err)
		writeServiceError(w, err, "get posts failed")
		return
	}

	handler.writePosts(w, posts)
}

func (handler *Handler) handleAll(w http.ResponseWriter, r *http.Request) {
	posts, err := handler.service.ListAll(r.Context())
	if err != nil {
		log.Errorf("get all posts: %s", err)
		writeServiceError(w, err, "get posts failed")
		return
	}

	handler.writePosts(w, posts)
}

func (handler *Handler) handleGetPost(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id := vars["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	post, err := handler.service.GetByID(r.Context(), id)
	if err != nil {
		log.Errorf("get post %s: %s", id, err)
		writeServiceError(w, err, "get post failed")
		return
	}

	// drafts are visible to a logged in editor only; to everyone else an
	// unpublished post does not exist
	if post == nil || (!post.Published && !handler.requestIsAuthorized(r)) {
		http.Error(w, "post not found", http.StatusNotFound)
		return
	}

	postJson, err := json.Marshal(post)
	if err != nil {
		log.Errorf("marshal post %s: %s", id, err)
		http.Error(w, "marshal post error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, postJson)
}

func (handler *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	var draft Post
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		log.Errorf("save post, unmarshal json params: %s", err)
		http.Error(w, "save post failed", http.StatusBadRequest)
		return
	}

	saved, err := handler.service.Save(r.Context(), &draft)
	if err != nil {
		log.Errorf("save post: %s", err)
		writeServiceError(w, err, "save post failed")
		return
	}

	handler.metrics.CounterPostsSaved.Inc()

	savedJson, err := json.Marshal(savePostResponse{Saved: saved})
	if err != nil {
		log.Errorf("marshal saved post: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, savedJson, http.StatusCreated)
}

func (handler *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id := vars["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	removed, err := handler.service.Remove(r.Context(), id)
	if err != nil {
		log.Errorf("delete post %s: %s", id, err)
		writeServiceError(w, err, "delete post failed")
		return
	}
	if !removed {
		http.Error(w, "post not found", http.StatusNotFound)
		return
	}

	handler.metrics.CounterPostsDeleted.Inc()

	pkg.WriteTextResponseOK(w, "deleted:"+id)
}

func (handler *Handler) writePosts(w http.ResponseWriter, posts []*Post) {
	postsJson, err := json.Marshal(PostsResponse{
		Posts: posts,
		Total: len(posts),
	})
	if err != nil {
		log.Errorf("marshal posts: %s", err)
		http.Error(w, "marshal posts error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, postsJson)
}

func (handler *Handler) requestIsAuthorized(r *http.Request) bool {
	token := r.Header.Get("X-ZISTH-TOKEN")
	if token == "" {
		return false
	}

	isLogged, err := handler.loginChecker.IsLogged(r.Context(), token)
	if err != nil {
		log.Tracef("check login token: %s", err)
		return false
	}

	return isLogged
}

// writeServiceError maps service errors to http status codes
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	var validationErr *ValidationError
	switch {
	case errors.As(err, &validationErr):
		http.Error(w, validationErr.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrPostNotFound):
		http.Error(w, "post not found", http.StatusNotFound)
	case errors.Is(err, ErrPostTooLarge):
		http.Error(w, "post too large, remove content or use smaller images", http.StatusRequestEntityTooLarge)
	case errors.Is(err, ErrStoreUnavailable):
		http.Error(w, "content store unavailable", http.StatusServiceUnavailable)
	default:
		http.Error(w, fallback, http.StatusInternalServerError)
	}
}
