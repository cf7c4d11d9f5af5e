package controllers

import (
	"net/http"
	"strings"

	"github.com/MathLeoYa/inmobiliaria/internal/dtos"
	"github.com/MathLeoYa/inmobiliaria/internal/storage"
	"github.com/MathLeoYa/inmobiliaria/internal/utils"
)

// maxUploadBytes caps a single image upload at 5 MiB.
const maxUploadBytes = 5 << 20

type UploadController struct {
	store storage.ImageStore
}

func NewUploadController(store storage.ImageStore) *UploadController {
	return &UploadController{store: store}
}

// UploadImageHandler -> POST /api/v1/uploads
//
// Accepts a multipart form with a single "image" part and returns the
// stored object's public URL. Listings reference uploaded images by these
// URLs.
func (c *UploadController) UploadImageHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		utils.RespondErrorWithCode(w, http.StatusRequestEntityTooLarge, utils.ErrCodeInvalidPayload,
			"Image exceeds the 5 MiB upload limit", nil, err)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload,
			"Missing image file in form field 'image'", nil, err)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload,
			"Only image uploads are accepted", nil)
		return
	}

	url, key, err := c.store.Put(r.Context(), file, contentType)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal,
			"Failed to store image", nil, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dtos.UploadResponse{URL: url, Key: key})
}
