package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sams-backend/internal/domain"
	"sams-backend/internal/service"
)

type staffRequest struct {
	Name     string `json:"name" binding:"required"`
	Position string `json:"position" binding:"required"`
	Email    string `json:"email" binding:"required"`
	PhotoURL string `json:"photo_url"`
}

type staffResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Email    string `json:"email"`
	PhotoURL string `json:"photo_url,omitempty"`
}

func staffToResponse(member domain.StaffMember) staffResponse {
	return staffResponse{
		ID:       member.ID,
		Name:     member.Name,
		Position: member.Position,
		Email:    member.Email,
		PhotoURL: member.PhotoURL,
	}
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func (h *Handler) listStaff(c *gin.Context) {
	members, err := h.staff.List(c.Request.Context())
	if err != nil {
		h.serverError(c, err)
		return
	}

	resp := make([]staffResponse, len(members))
	for i := range members {
		resp[i] = staffToResponse(members[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) getStaff(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	member, err := h.staff.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "staff member not found"})
			return
		}
		h.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, staffToResponse(*member))
}

func (h *Handler) createStaff(c *gin.Context) {
	var req staffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	member, err := h.staff.Create(c.Request.Context(), &domain.StaffMember{
		Name:     req.Name,
		Position: req.Position,
		Email:    req.Email,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.JSON(http.StatusCreated, staffToResponse(*member))
}

func (h *Handler) deleteStaff(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.staff.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "staff member not found"})
			return
		}
		h.serverError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
