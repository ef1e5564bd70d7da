package simulation

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/forestlab/rilsim/internal/engine"
	"github.com/forestlab/rilsim/internal/export"
)

// Handler handles HTTP requests for simulation operations.
type Handler struct {
	service *Service
	csv     *export.CSVExporter
	excel   *export.ExcelExporter
	pdf     *export.PDFExporter
	logger  *zap.Logger
}

// NewHandler creates a new simulation handler.
func NewHandler(service *Service, pdfOptions export.PDFOptions, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		csv:     export.NewCSVExporter(export.DefaultCSVOptions()),
		excel:   export.NewExcelExporter(export.DefaultExcelOptions()),
		pdf:     export.NewPDFExporter(pdfOptions),
		logger:  logger,
	}
}

// RegisterRoutes registers simulation routes.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	sim := router.Group("/simulation")
	{
		sim.POST("/runs", h.simulate)
		sim.POST("/validate", h.validate)
		sim.POST("/runs/export/:format", h.exportRun)

		sim.GET("/profiles", h.listProfiles)
		sim.GET("/profiles/:code", h.getProfile)
		sim.GET("/profiles/:code/presets", h.getPresets)
		sim.GET("/profiles/:code/comparison", h.compare)
		sim.GET("/profiles/:code/comparison/export/:format", h.exportComparison)
	}
}

// respondError maps service errors onto HTTP statuses.
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUnknownProfile):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, engine.ErrInvalidOperation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logger.Error("simulation request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// simulate handles POST /simulation/runs
func (h *Handler) simulate(c *gin.Context) {
	var req SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.Run(&req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// validate handles POST /simulation/validate. Validation problems are the
// expected payload here, so the response is 200 either way.
func (h *Handler) validate(c *gin.Context) {
	var req SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results, err := h.service.Validate(&req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}

// listProfiles handles GET /simulation/profiles
func (h *Handler) listProfiles(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"profiles": h.service.Profiles()})
}

// getProfile handles GET /simulation/profiles/:code
func (h *Handler) getProfile(c *gin.Context) {
	profile, err := h.service.ProfileDetail(c.Param("code"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// getPresets handles GET /simulation/profiles/:code/presets
func (h *Handler) getPresets(c *gin.Context) {
	presets, err := h.service.Presets(c.Param("code"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, presets)
}

// compare handles GET /simulation/profiles/:code/comparison
func (h *Handler) compare(c *gin.Context) {
	table, err := h.service.Compare(c.Param("code"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, table)
}

// exportRun handles POST /simulation/runs/export/:format
func (h *Handler) exportRun(c *gin.Context) {
	var req SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.Run(&req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	format := c.Param("format")
	filename := fmt.Sprintf("run-%s.%s", result.RunID, format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	switch format {
	case "csv":
		c.Header("Content-Type", "text/csv")
		err = h.csv.WriteTrajectory(c.Writer, result)
	case "xlsx":
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		err = h.excel.WriteRun(c.Writer, result)
	case "pdf":
		profile, _ := h.service.Engine().Profile(result.ProfileCode)
		c.Header("Content-Type", "application/pdf")
		err = h.pdf.WriteRunReport(c.Writer, result, profile)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unsupported format: %s", format)})
		return
	}

	if err != nil {
		h.logger.Error("run export failed", zap.String("format", format), zap.Error(err))
		c.Status(http.StatusInternalServerError)
	}
}

// exportComparison handles GET /simulation/profiles/:code/comparison/export/:format
func (h *Handler) exportComparison(c *gin.Context) {
	table, err := h.service.Compare(c.Param("code"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	format := c.Param("format")
	filename := fmt.Sprintf("comparison-%s.%s", table.ProfileCode, format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	switch format {
	case "csv":
		c.Header("Content-Type", "text/csv")
		err = h.csv.WriteComparison(c.Writer, table)
	case "xlsx":
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		err = h.excel.WriteComparison(c.Writer, table)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unsupported format: %s", format)})
		return
	}

	if err != nil {
		h.logger.Error("comparison export failed", zap.String("format", format), zap.Error(err))
		c.Status(http.StatusInternalServerError)
	}
}
