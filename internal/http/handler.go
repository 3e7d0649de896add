package http

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/kylewhite0225/cloud-ml-license-reader/internal/registry"
)

// NewRouter builds the per-worker ops router with health and metrics
// endpoints. Stage-specific APIs are registered on top of it.
func NewRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

// Handler serves the DMV registry admin API.
type Handler struct {
	registry *registry.Repository
	log      zerolog.Logger
}

func NewHandler(reg *registry.Repository, log zerolog.Logger) *Handler {
	return &Handler{
		registry: reg,
		log:      log,
	}
}

func (h *Handler) Register(r *gin.Engine, authMiddleware gin.HandlerFunc) {
	// Public endpoints
	public := r.Group("/api/v1")
	{
		public.GET("/registry/:plate", h.findVehicle)
	}

	// Protected endpoints
	protected := r.Group("/api/v1")
	protected.Use(authMiddleware)
	{
		protected.POST("/registry", h.createVehicle)
	}
}

func (h *Handler) findVehicle(c *gin.Context) {
	plate := c.Param("plate")

	record, err := h.registry.FindByPlate(c.Request.Context(), plate)
	if err != nil {
		h.log.Error().Err(err).Str("plate", plate).Msg("registry lookup failed")
		c.JSON(http.StatusInternalServerError, errorResponse("internal error"))
		return
	}
	if record == nil {
		c.JSON(http.StatusNotFound, errorResponse("plate not registered"))
		return
	}

	c.JSON(http.StatusOK, successResponse(record))
}

type createVehicleRequest struct {
	Plate             string `json:"plate" binding:"required"`
	Make              string `json:"make"`
	Model             string `json:"model"`
	Color             string `json:"color"`
	OwnerName         string `json:"owner_name"`
	OwnerContact      string `json:"owner_contact"`
	PreferredLanguage string `json:"preferred_language"`
}

func (h *Handler) createVehicle(c *gin.Context) {
	var req createVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	vehicle := &registry.Vehicle{
		Plate:             req.Plate,
		Make:              req.Make,
		Model:             req.Model,
		Color:             req.Color,
		OwnerName:         req.OwnerName,
		OwnerContact:      req.OwnerContact,
		PreferredLanguage: req.PreferredLanguage,
	}
	if err := h.registry.CreateVehicle(c.Request.Context(), vehicle); err != nil {
		h.log.Error().Err(err).Str("plate", req.Plate).Msg("failed to create registry record")
		c.JSON(http.StatusInternalServerError, errorResponse("internal error"))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "ok",
		"id":     vehicle.ID,
		"plate":  vehicle.Plate,
	})
}

func successResponse(data interface{}) gin.H {
	return gin.H{
		"data": data,
	}
}

func errorResponse(message string) gin.H {
	return gin.H{
		"error": message,
	}
}
