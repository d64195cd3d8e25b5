package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"sams-backend/internal/domain"
	"sams-backend/internal/service"
)

type announcementCreateRequest struct {
	Title     string `json:"title" binding:"required"`
	Body      string `json:"body" binding:"required"`
	Published *bool  `json:"published"`
}

type announcementUpdateRequest struct {
	Title     *string `json:"title"`
	Body      *string `json:"body"`
	Published *bool   `json:"published"`
}

type announcementResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Published bool   `json:"published"`
	CreatedBy string `json:"created_by,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func announcementToResponse(a domain.Announcement) announcementResponse {
	return announcementResponse{
		ID:        a.ID,
		Title:     a.Title,
		Body:      a.Body,
		Published: a.Published,
		CreatedBy: a.CreatedBy,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
		UpdatedAt: a.UpdatedAt.Format(time.RFC3339),
	}
}

// listAnnouncements shows published entries to everyone; an admin token
// widens the listing to unpublished drafts as well.
func (h *Handler) listAnnouncements(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	publishedOnly := true
	if user, err := h.resolveUser(c); err == nil && user.Role == domain.RoleAdmin {
		publishedOnly = false
	}

	items, err := h.announcements.List(c.Request.Context(), publishedOnly, limit, offset)
	if err != nil {
		h.serverError(c, err)
		return
	}

	resp := make([]announcementResponse, len(items))
	for i := range items {
		resp[i] = announcementToResponse(items[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) getAnnouncement(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	a, err := h.announcements.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "announcement not found"})
			return
		}
		h.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, announcementToResponse(*a))
}

func (h *Handler) createAnnouncement(c *gin.Context) {
	var req announcementCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	a := &domain.Announcement{
		Title:     req.Title,
		Body:      req.Body,
		Published: true,
	}
	if req.Published != nil {
		a.Published = *req.Published
	}
	if user := currentUser(c); user != nil {
		a.CreatedBy = user.Username
	}

	a, err := h.announcements.Create(c.Request.Context(), a)
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.JSON(http.StatusCreated, announcementToResponse(*a))
}

func (h *Handler) updateAnnouncement(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req announcementUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	a, err := h.announcements.Update(c.Request.Context(), id, service.AnnouncementUpdate{
		Title:     req.Title,
		Body:      req.Body,
		Published: req.Published,
	})
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "announcement not found"})
			return
		}
		h.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, announcementToResponse(*a))
}

func (h *Handler) deleteAnnouncement(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.announcements.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "announcement not found"})
			return
		}
		h.serverError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
