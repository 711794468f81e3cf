package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sennin361/senninmessagever.3/internal/handlers/dto"
	"github.com/sennin361/senninmessagever.3/internal/uploads"
)

type UploadHandler struct {
	store    uploads.Store
	maxBytes int64
}

func NewUploadHandler(store uploads.Store, maxBytes int64) *UploadHandler {
	return &UploadHandler{store: store, maxBytes: maxBytes}
}

// Upload принимает одну картинку и возвращает URL для sendMessage
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file uploaded"})
		return
	}

	if file.Size > h.maxBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file too large"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read file"})
		return
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, h.maxBytes))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read file"})
		return
	}

	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "only images are allowed"})
		return
	}

	id := uuid.New().String()
	obj := uploads.Object{Data: data, ContentType: mtype.String()}
	if err := h.store.Put(c.Request.Context(), id, obj); err != nil {
		log.Printf("Failed to store upload: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store file"})
		return
	}

	c.JSON(http.StatusOK, dto.UploadResponse{URL: "/uploads/" + id})
}

// Serve отдает загруженную картинку по id
func (h *UploadHandler) Serve(c *gin.Context) {
	obj, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, uploads.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		log.Printf("Failed to load upload: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load file"})
		return
	}

	c.Data(http.StatusOK, obj.ContentType, obj.Data)
}
