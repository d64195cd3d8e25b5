package http

import (
	"errors"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sams-backend/internal/domain"
	"sams-backend/internal/service"
)

type galleryCreateRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description"`
	AltText     string `json:"alt_text" binding:"max=255"`
	IsFeatured  bool   `json:"is_featured"`
}

type galleryUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	AltText     *string `json:"alt_text"`
	IsFeatured  *bool   `json:"is_featured"`
}

type galleryResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	AltText     string `json:"alt_text,omitempty"`
	MediaURL    string `json:"media_url"`
	IsFeatured  bool   `json:"is_featured"`
	CreatedBy   string `json:"created_by,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func galleryToResponse(item domain.GalleryItem) galleryResponse {
	return galleryResponse{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		AltText:     item.AltText,
		MediaURL:    item.MediaURL,
		IsFeatured:  item.IsFeatured,
		CreatedBy:   item.CreatedBy,
		CreatedAt:   item.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   item.UpdatedAt.Format(time.RFC3339),
	}
}

func (h *Handler) listGallery(c *gin.Context) {
	featured, _ := strconv.ParseBool(c.DefaultQuery("featured", "false"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	items, err := h.gallery.List(c.Request.Context(), featured, limit, offset)
	if err != nil {
		h.serverError(c, err)
		return
	}

	resp := make([]galleryResponse, len(items))
	for i := range items {
		resp[i] = galleryToResponse(items[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) getGalleryItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	item, err := h.gallery.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "gallery item not found"})
			return
		}
		h.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, galleryToResponse(*item))
}

func (h *Handler) createGalleryItem(c *gin.Context) {
	var req galleryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	item := &domain.GalleryItem{
		Title:       req.Title,
		Description: req.Description,
		AltText:     req.AltText,
		IsFeatured:  req.IsFeatured,
	}
	if user := currentUser(c); user != nil {
		item.CreatedBy = user.Username
	}

	item, err := h.gallery.Create(c.Request.Context(), item)
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.JSON(http.StatusCreated, galleryToResponse(*item))
}

func (h *Handler) updateGalleryItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req galleryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	item, err := h.gallery.Update(c.Request.Context(), id, service.GalleryUpdate{
		Title:       req.Title,
		Description: req.Description,
		AltText:     req.AltText,
		IsFeatured:  req.IsFeatured,
	})
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "gallery item not found"})
			return
		}
		h.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, galleryToResponse(*item))
}

func (h *Handler) deleteGalleryItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.gallery.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "gallery item not found"})
			return
		}
		h.serverError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// uploadGalleryMedia stores the uploaded file under a fresh uuid key and
// records the resulting URL on the gallery item.
func (h *Handler) uploadGalleryMedia(c *gin.Context) {
	if h.media == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "media storage not configured"})
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	if _, err := h.gallery.Get(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "gallery item not found"})
			return
		}
		h.serverError(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file field is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.serverError(c, err)
		return
	}
	defer file.Close()

	key := uuid.NewString() + filepath.Ext(fileHeader.Filename)
	url, err := h.media.Put(c.Request.Context(), key, fileHeader.Header.Get("Content-Type"), file)
	if err != nil {
		h.serverError(c, err)
		return
	}

	item, err := h.gallery.SetMediaURL(c.Request.Context(), id, url)
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, galleryToResponse(*item))
}
