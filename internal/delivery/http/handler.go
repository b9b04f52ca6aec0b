package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TimSpecFlow/door-builder-app/internal/domain"
	"github.com/TimSpecFlow/door-builder-app/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	recommendations *usecase.RecommendationService
	estimates       *usecase.EstimateService
	vision          domain.MeasurementExtractor
}

// NewHandler creates a new HTTP handler. vision may be nil when measurement
// parsing is not configured; the endpoint then returns 503.
func NewHandler(
	recommendations *usecase.RecommendationService,
	estimates *usecase.EstimateService,
	vision domain.MeasurementExtractor,
) *Handler {
	return &Handler{
		recommendations: recommendations,
		estimates:       estimates,
		vision:          vision,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "specflow-backend",
		"version": "1.0.0",
	})
}

// GetRecommendations normalizes the posted door specification and returns
// aggregated product recommendations from the selected distributors.
func (h *Handler) GetRecommendations(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body must be a JSON object"})
		return
	}

	ids := distributorIDs(body)

	spec, err := usecase.NormalizeSpecification(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.recommendations.Aggregate(spec, ids)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate recommendations"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListDistributors returns the static distributor metadata, independent of
// any specification.
func (h *Handler) ListDistributors(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"distributors": h.recommendations.ListDistributors(),
	})
}

// GetEstimate returns an area-based price estimate for a door
// specification. Width and height are required here, unlike the
// recommendation endpoint where they default.
func (h *Handler) GetEstimate(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body must be a JSON object"})
		return
	}

	if body["width"] == nil || body["height"] == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "width and height are required"})
		return
	}

	spec, err := usecase.NormalizeSpecification(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "width and height must be positive"})
		return
	}

	c.JSON(http.StatusOK, h.estimates.Estimate(spec))
}

// parseMeasurementsRequest is the payload for the measurement endpoint.
type parseMeasurementsRequest struct {
	Image string `json:"image" binding:"required"`
}

// ParseMeasurements extracts door dimensions from an uploaded image via the
// vision model.
func (h *Handler) ParseMeasurements(c *gin.Context) {
	if h.vision == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "measurement parsing is not configured"})
		return
	}

	var req parseMeasurementsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
		return
	}

	m, err := h.vision.ParseMeasurements(c.Request.Context(), req.Image)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
		case errors.Is(err, domain.ErrVisionAPIFailure):
			c.JSON(http.StatusBadGateway, gin.H{"error": "measurement extraction failed"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "measurement extraction failed"})
		}
		return
	}

	c.JSON(http.StatusOK, m)
}

// distributorIDs pulls the optional distributor filter out of the request
// body. Both "distributorIds" and "vendorIds" are accepted.
func distributorIDs(body map[string]interface{}) []string {
	for _, key := range []string{"distributorIds", "vendorIds"} {
		raw, ok := body[key].([]interface{})
		if !ok {
			continue
		}
		var ids []string
		for _, v := range raw {
			if s, ok := v.(string); ok {
				ids = append(ids, s)
			}
		}
		return ids
	}
	return nil
}
