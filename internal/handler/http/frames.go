package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dpanagushin/framestore/internal/logger"
	"github.com/dpanagushin/framestore/internal/service"
	"github.com/dpanagushin/framestore/internal/utils"
	"github.com/dpanagushin/framestore/models"
)

// maxUploadMemory caps how much of a multipart body is held in memory before
// spilling to temporary files.
const maxUploadMemory = 32 << 20

// filesFormField is the multipart form field carrying the uploaded images,
// repeated once per file.
const filesFormField = "files"

func (h *Handler) uploadFrames(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	token := chi.URLParam(r, "token")

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		log.Err(err).Msg("invalid multipart body")
		http.Error(w, "invalid multipart body", http.StatusBadRequest)
		return
	}

	var files []models.FrameUpload
	for _, fileHeader := range r.MultipartForm.File[filesFormField] {
		file, err := fileHeader.Open()
		if err != nil {
			log.Err(err).Str("file", fileHeader.Filename).Msg("cannot open uploaded file")
			http.Error(w, "cannot read uploaded file", http.StatusBadRequest)
			return
		}

		content, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			log.Err(err).Str("file", fileHeader.Filename).Msg("cannot read uploaded file")
			http.Error(w, "cannot read uploaded file", http.StatusBadRequest)
			return
		}

		files = append(files, models.FrameUpload{Name: fileHeader.Filename, Content: content})
	}

	response, err := h.services.FrameService.Upload(ctx, token, files)
	if err != nil {
		h.writeFrameError(w, r, err)
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) getFrames(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token := chi.URLParam(r, "token")
	code := chi.URLParam(r, "code")

	response, err := h.services.FrameService.Get(ctx, token, code)
	if err != nil {
		h.writeFrameError(w, r, err)
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) deleteFrames(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token := chi.URLParam(r, "token")
	code := chi.URLParam(r, "code")

	if err := h.services.FrameService.Delete(ctx, token, code); err != nil {
		h.writeFrameError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{
		Message: fmt.Sprintf("batch %s deleted", code),
	}, http.StatusOK)
}

// writeFrameError maps frame workflow errors to HTTP statuses. Authentication
// and validation failures are all client errors; only a role violation gets
// its own status.
func (h *Handler) writeFrameError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	switch {
	case errors.Is(err, service.ErrTokenNotFound):
		log.Err(err).Msg("unknown auth token")
		http.Error(w, "unknown auth token", http.StatusBadRequest)
	case errors.Is(err, service.ErrInvalidBatchSize):
		log.Err(err).Msg("invalid number of files")
		http.Error(w, "invalid number of files", http.StatusBadRequest)
	case errors.Is(err, service.ErrInvalidImageFormat):
		log.Err(err).Msg("invalid image format")
		http.Error(w, "only .jpg files are accepted", http.StatusBadRequest)
	case errors.Is(err, service.ErrBatchNotFound):
		log.Err(err).Msg("batch not found")
		http.Error(w, "batch not found", http.StatusBadRequest)
	case errors.Is(err, service.ErrNotAllowed):
		log.Err(err).Msg("operation is not allowed for this role")
		http.Error(w, "operation is not allowed for this role", http.StatusMethodNotAllowed)
	default:
		log.Err(err).Msg("unexpected error occurred during frame operation")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
