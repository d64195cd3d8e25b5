package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"sams-backend/internal/auth"
	"sams-backend/internal/service"
	"sams-backend/internal/storage"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	auth          service.AuthService
	tokens        *auth.TokenService
	staff         service.StaffService
	gallery       service.GalleryService
	announcements service.AnnouncementService
	dashboard     service.DashboardService
	media         storage.Store
	logger        *logrus.Logger
}

func NewHandler(
	authSvc service.AuthService,
	tokens *auth.TokenService,
	staff service.StaffService,
	gallery service.GalleryService,
	announcements service.AnnouncementService,
	dashboard service.DashboardService,
	media storage.Store,
	logger *logrus.Logger,
) *Handler {
	if logger == nil {
		logger = logrus.New()
	}
	return &Handler{
		auth:          authSvc,
		tokens:        tokens,
		staff:         staff,
		gallery:       gallery,
		announcements: announcements,
		dashboard:     dashboard,
		media:         media,
		logger:        logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", h.register)
			authGroup.POST("/login", h.login)
			authGroup.GET("/me", h.authRequired(), h.me)
		}

		staff := api.Group("/staff")
		{
			staff.GET("", h.listStaff)
			staff.GET("/:id", h.getStaff)
			staff.POST("", h.authRequired(), h.adminRequired(), h.createStaff)
			staff.DELETE("/:id", h.authRequired(), h.adminRequired(), h.deleteStaff)
		}

		gallery := api.Group("/gallery")
		{
			gallery.GET("", h.listGallery)
			gallery.GET("/:id", h.getGalleryItem)
			gallery.POST("", h.authRequired(), h.adminRequired(), h.createGalleryItem)
			gallery.PUT("/:id", h.authRequired(), h.adminRequired(), h.updateGalleryItem)
			gallery.DELETE("/:id", h.authRequired(), h.adminRequired(), h.deleteGalleryItem)
			gallery.POST("/:id/media", h.authRequired(), h.adminRequired(), h.uploadGalleryMedia)
		}

		announcements := api.Group("/announcements")
		{
			announcements.GET("", h.listAnnouncements)
			announcements.GET("/:id", h.getAnnouncement)
			announcements.POST("", h.authRequired(), h.adminRequired(), h.createAnnouncement)
			announcements.PUT("/:id", h.authRequired(), h.adminRequired(), h.updateAnnouncement)
			announcements.DELETE("/:id", h.authRequired(), h.adminRequired(), h.deleteAnnouncement)
		}

		api.GET("/dashboard", h.authRequired(), h.adminRequired(), h.getDashboard)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func (h *Handler) getDashboard(c *gin.Context) {
	stats, err := h.dashboard.Stats(c.Request.Context())
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"users":         stats.Users,
		"staff":         stats.Staff,
		"gallery_items": stats.GalleryItems,
		"announcements": stats.Announcements,
	})
}

// serverError logs the underlying cause and answers with a generic body so
// internals never leak into responses.
func (h *Handler) serverError(c *gin.Context, err error) {
	h.logger.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
