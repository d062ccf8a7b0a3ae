package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"fleet-analytics-service/internal/http/middleware"
	"fleet-analytics-service/internal/model"
	"fleet-analytics-service/internal/service"
)

type Handler struct {
	analytics *service.AnalyticsService
	records   *service.RecordsService
	log       zerolog.Logger
}

func NewHandler(analytics *service.AnalyticsService, records *service.RecordsService, log zerolog.Logger) *Handler {
	return &Handler{analytics: analytics, records: records, log: log}
}

func (h *Handler) Register(r *gin.Engine, authMiddleware gin.HandlerFunc) {
	api := r.Group("/api/v1")
	api.Use(authMiddleware)

	api.GET("/analytics/fleet", h.getFleetAnalytics)
	api.GET("/analytics/vehicles/:id", h.getVehicleReport)
	api.GET("/analytics/vehicles/:id/trend", h.getEfficiencyTrend)
	api.GET("/analytics/vehicles/:id/maintenance", h.getMaintenancePrediction)
	api.GET("/analytics/vehicles/:id/costs", h.getCostOptimization)

	api.GET("/vehicles", h.listVehicles)
	api.POST("/vehicles", h.createVehicle)
	api.GET("/vehicles/:id", h.getVehicle)
	api.PUT("/vehicles/:id", h.updateVehicle)
	api.DELETE("/vehicles/:id", h.deleteVehicle)

	api.GET("/vehicles/:id/fuel-records", h.listFuelRecords)
	api.POST("/vehicles/:id/fuel-records", h.addFuelRecord)
	api.DELETE("/fuel-records/:id", h.deleteFuelRecord)

	api.GET("/vehicles/:id/maintenance-records", h.listMaintenanceRecords)
	api.POST("/vehicles/:id/maintenance-records", h.addMaintenanceRecord)
	api.DELETE("/maintenance-records/:id", h.deleteMaintenanceRecord)
}

func (h *Handler) getFleetAnalytics(c *gin.Context) {
	if _, ok := middleware.MustPrincipal(c); !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	fleet, err := h.analytics.GetFleetAnalytics(c.Request.Context(), parseDateRange(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(fleet))
}

func (h *Handler) getVehicleReport(c *gin.Context) {
	if _, ok := middleware.MustPrincipal(c); !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	vehicleID, ok := parseID(c)
	if !ok {
		return
	}

	report, err := h.analytics.GetVehicleReport(c.Request.Context(), vehicleID, parseDateRange(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(report))
}

func (h *Handler) getEfficiencyTrend(c *gin.Context) {
	if _, ok := middleware.MustPrincipal(c); !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	vehicleID, ok := parseID(c)
	if !ok {
		return
	}

	trend, err := h.analytics.GetEfficiencyTrend(c.Request.Context(), vehicleID, parseDateRange(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(trend))
}

func (h *Handler) getMaintenancePrediction(c *gin.Context) {
	if _, ok := middleware.MustPrincipal(c); !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	vehicleID, ok := parseID(c)
	if !ok {
		return
	}

	var odometerOverride *float64
	if odoStr := strings.TrimSpace(c.Query("current_odometer")); odoStr != "" {
		if parsed, err := strconv.ParseFloat(odoStr, 64); err == nil {
			odometerOverride = &parsed
		}
	}

	prediction, err := h.analytics.GetMaintenancePrediction(c.Request.Context(), vehicleID, odometerOverride)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(prediction))
}

func (h *Handler) getCostOptimization(c *gin.Context) {
	if _, ok := middleware.MustPrincipal(c); !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	vehicleID, ok := parseID(c)
	if !ok {
		return
	}

	costs, err := h.analytics.GetCostOptimization(c.Request.Context(), vehicleID, parseDateRange(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(costs))
}

func (h *Handler) listVehicles(c *gin.Context) {
	if _, ok := middleware.MustPrincipal(c); !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	vehicles, err := h.records.ListVehicles(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(vehicles))
}

func (h *Handler) getVehicle(c *gin.Context) {
	if _, ok := middleware.MustPrincipal(c); !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	vehicleID, ok := parseID(c)
	if !ok {
		return
	}

	vehicle, err := h.records.GetVehicle(c.Request.Context(), vehicleID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(vehicle))
}

func (h *Handler) createVehicle(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	var input model.VehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	vehicle, err := h.records.CreateVehicle(c.Request.Context(), principal, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(vehicle))
}

func (h *Handler) updateVehicle(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	vehicleID, ok := parseID(c)
	if !ok {
		return
	}

	var input model.VehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	vehicle, err := h.records.UpdateVehicle(c.Request.Context(), principal, vehicleID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(vehicle))
}

func (h *Handler) deleteVehicle(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	vehicleID, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.records.DeleteVehicle(c.Request.Context(), principal, vehicleID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) listFuelRecords(c *gin.Context) {
	if _, ok := middleware.MustPrincipal(c); !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	vehicleID, ok := parseID(c)
	if !ok {
		return
	}

	records, err := h.records.ListFuelRecords(c.Request.Context(), vehicleID, parseDateRange(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(records))
}

func (h *Handler) addFuelRecord(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	vehicleID, ok := parseID(c)
	if !ok {
		return
	}

	var raw model.RawFuelRecord
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	record, err := h.records.AddFuelRecord(c.Request.Context(), principal, vehicleID, raw)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(record))
}

func (h *Handler) deleteFuelRecord(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	recordID, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.records.DeleteFuelRecord(c.Request.Context(), principal, recordID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) listMaintenanceRecords(c *gin.Context) {
	if _, ok := middleware.MustPrincipal(c); !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	vehicleID, ok := parseID(c)
	if !ok {
		return
	}

	records, err := h.records.ListMaintenanceRecords(c.Request.Context(), vehicleID, parseDateRange(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(records))
}

func (h *Handler) addMaintenanceRecord(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	vehicleID, ok := parseID(c)
	if !ok {
		return
	}

	var input model.MaintenanceRecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	record, err := h.records.AddMaintenanceRecord(c.Request.Context(), principal, vehicleID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(record))
}

func (h *Handler) deleteMaintenanceRecord(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	recordID, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.records.DeleteMaintenanceRecord(c.Request.Context(), principal, recordID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// parseDateRange reads from/to query params. Unparseable values are ignored;
// the service clamps whatever remains.
func parseDateRange(c *gin.Context) model.DateRange {
	rng := model.DateRange{}
	if fromStr := strings.TrimSpace(c.Query("from")); fromStr != "" {
		if parsed, err := time.Parse(time.RFC3339, fromStr); err == nil {
			rng.From = parsed
		}
	}
	if toStr := strings.TrimSpace(c.Query("to")); toStr != "" {
		if parsed, err := time.Parse(time.RFC3339, toStr); err == nil {
			rng.To = parsed
		}
	}
	return rng
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid id"))
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, errorResponse(err.Error()))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse(err.Error()))
	default:
		h.log.Error().Err(err).Msg("handler error")
		c.JSON(http.StatusInternalServerError, errorResponse("internal error"))
	}
}

func successResponse(data interface{}) gin.H {
	return gin.H{"data": data}
}

func errorResponse(message string) gin.H {
	return gin.H{"error": message}
}
