package images

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/zisth/zisthcom/internal/telemetry/metrics"
	"github.com/zisth/zisthcom/pkg"
)

// maximum upload of 10 MB image files
const maxUploadedImageSize = 10 << 20

type Handler struct {
	normalizer *Normalizer
	metrics    *metrics.Manager
}

func NewHandler(normalizer *Normalizer, metrics *metrics.Manager) *Handler {
	return &Handler{
		normalizer: normalizer,
		metrics:    metrics,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/blog/image", handler.handleUpload).Methods("POST", "OPTIONS").Name("upload-image")
}

type uploadImageResponse struct {
	Image string `json:"image"`
}

// handleUpload takes an image from the editor (file picker, clipboard paste
// or drag-drop), compresses it and returns it as an inline data URI
func (handler *Handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadedImageSize); err != nil {
		log.Errorf("upload image, parse multipart form: %s", err)
		http.Error(w, "internal error or image too big", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		log.Errorf("upload image, get file from form: %s", err)
		http.Error(w, "upload image failed", http.StatusBadRequest)
		return
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Errorf("upload image, close file: %s", err)
		}
	}()

	log.Debugf(
		"upload image, filename: %s, size: %d, content-type: %s",
		header.Filename, header.Size, header.Header["Content-Type"],
	)

	data, err := io.ReadAll(file)
	if err != nil {
		log.Errorf("upload image, read file: %s", err)
		http.Error(w, "upload image failed", http.StatusInternalServerError)
		return
	}

	encoded, err := handler.normalizer.CompressDefault(data)
	if err != nil {
		if errors.Is(err, ErrUnreadableFile) {
			http.Error(w, "file is not a readable image", http.StatusBadRequest)
			return
		}
		log.Errorf("upload image, compress: %s", err)
		http.Error(w, "upload image failed", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterImagesCompressed.Inc()

	respJson, err := json.Marshal(uploadImageResponse{Image: encoded})
	if err != nil {
		log.Errorf("upload image, marshal response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}
