package http

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"dashboard-service/internal/dashboard"
	"dashboard-service/internal/export"
	"dashboard-service/internal/http/middleware"
	"dashboard-service/internal/model"
	"dashboard-service/internal/service"
	"dashboard-service/internal/ticket"
)

type Handler struct {
	dashboards    *service.DashboardService
	tickets       *service.TicketService
	maxAttachment int64
	log           zerolog.Logger
}

func NewHandler(dashboards *service.DashboardService, tickets *service.TicketService, maxAttachment int64, log zerolog.Logger) *Handler {
	return &Handler{dashboards: dashboards, tickets: tickets, maxAttachment: maxAttachment, log: log}
}

func (h *Handler) Register(r *gin.Engine, authMiddleware gin.HandlerFunc) {
	protected := r.Group("/api")
	protected.Use(authMiddleware)

	protected.GET("/dashboard/:report", h.getDashboard)
	protected.GET("/dashboard/:report/maxview/:tag", h.getMaxView)
	protected.GET("/dashboard/:report/maxview/:tag/export", h.exportMaxView)
	protected.POST("/dashboard/cache/invalidate", h.invalidateDashboards)

	protected.GET("/tickets", h.listTickets)
	protected.GET("/tickets/:uuid", h.getTicket)
	protected.POST("/tickets/:uuid/update", h.updateTicket)
	protected.GET("/tickets/:uuid/journal", h.getTicketJournal)
}

func (h *Handler) getDashboard(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	req, ok := h.parseDashboardRequest(c)
	if !ok {
		return
	}

	view, err := h.dashboards.Dashboard(c.Request.Context(), principal, req)
	if err != nil && view != nil {
		// the error-state view carries the message the page shows
		h.log.Warn().Err(err).Str("report", string(req.Report)).Msg("dashboard rendered in error state")
		c.JSON(http.StatusBadGateway, gin.H{"data": view, "error": view.Message})
		return
	}
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(view))
}

func (h *Handler) getMaxView(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	req, ok := h.parseDashboardRequest(c)
	if !ok {
		return
	}

	mv, err := h.dashboards.MaxView(c.Request.Context(), principal, req, c.Param("tag"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(mv))
}

func (h *Handler) exportMaxView(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	req, ok := h.parseDashboardRequest(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	name, err := h.dashboards.ExportMaxView(c.Request.Context(), principal, req, c.Param("tag"), &buf)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+name+"\"")
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}

func (h *Handler) invalidateDashboards(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}
	if !principal.IsAdmin() {
		h.handleError(c, service.ErrPermissionDenied)
		return
	}

	if err := h.dashboards.Invalidate(c.Request.Context()); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"invalidated": true}))
}

func (h *Handler) listTickets(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	page := parseIntQuery(c, "page", 1)
	perPage := parseIntQuery(c, "per_page", 20)

	result, err := h.tickets.List(c.Request.Context(), principal, page, perPage)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(result))
}

func (h *Handler) getTicket(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id, ok := parseTicketUUID(c)
	if !ok {
		return
	}

	t, err := h.tickets.Get(c.Request.Context(), principal, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(t))
}

func (h *Handler) updateTicket(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id, ok := parseTicketUUID(c)
	if !ok {
		return
	}

	form, ok := h.parseUpdateForm(c)
	if !ok {
		return
	}

	result, err := h.tickets.Update(c.Request.Context(), principal, id, form)
	if err != nil {
		if errors.Is(err, service.ErrValidation) && result != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"data": result, "error": err.Error()})
			return
		}
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(result))
}

func (h *Handler) getTicketJournal(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id, ok := parseTicketUUID(c)
	if !ok {
		return
	}

	entries, err := h.tickets.Journal(c.Request.Context(), principal, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(entries))
}

func (h *Handler) parseDashboardRequest(c *gin.Context) (service.DashboardRequest, bool) {
	report, err := dashboard.ParseReportType(c.Param("report"))
	if err != nil {
		c.JSON(http.StatusNotFound, errorResponse(err.Error()))
		return service.DashboardRequest{}, false
	}

	filter := model.DashboardFilter{}
	if raw := strings.TrimSpace(c.Query("level")); raw != "" {
		level, ok := dashboard.ParseDataLevel(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, errorResponse("invalid level"))
			return service.DashboardRequest{}, false
		}
		filter.Level = string(level)
	}
	if fromStr := strings.TrimSpace(c.Query("from")); fromStr != "" {
		if parsed, ok := parseDate(fromStr); ok {
			filter.Range.From = parsed
		}
	}
	if toStr := strings.TrimSpace(c.Query("to")); toStr != "" {
		if parsed, ok := parseDate(toStr); ok {
			filter.Range.To = parsed
		}
	}

	return service.DashboardRequest{Report: report, Filter: filter}, true
}

func (h *Handler) parseUpdateForm(c *gin.Context) (ticket.UpdateForm, bool) {
	if h.maxAttachment > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxAttachment+1<<20)
	}

	// unknown statuses pass through so validation can report them
	status, _ := ticket.ParseStatus(c.PostForm("status"))
	form := ticket.UpdateForm{
		Status:  status,
		Comment: strings.TrimSpace(c.PostForm("comment")),
	}

	header, err := c.FormFile("attachment")
	switch {
	case errors.Is(err, http.ErrMissingFile):
		return form, true
	case err != nil:
		c.JSON(http.StatusBadRequest, errorResponse("invalid multipart form"))
		return form, false
	}
	if h.maxAttachment > 0 && header.Size > h.maxAttachment {
		c.JSON(http.StatusRequestEntityTooLarge, errorResponse("attachment too large"))
		return form, false
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid attachment"))
		return form, false
	}
	defer file.Close()
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(file); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid attachment"))
		return form, false
	}

	form.Attachment = &ticket.Attachment{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Content:     &buf,
	}
	return form, true
}

func parseTicketUUID(c *gin.Context) (string, bool) {
	idStr := strings.TrimSpace(c.Param("uuid"))
	if _, err := uuid.Parse(idStr); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid ticket uuid"))
		return "", false
	}
	return idStr, true
}

// parseDate accepts RFC3339 or a bare calendar date.
func parseDate(raw string) (time.Time, bool) {
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return parsed, true
	}
	if parsed, err := time.Parse("2006-01-02", raw); err == nil {
		return parsed, true
	}
	return time.Time{}, false
}

func parseIntQuery(c *gin.Context, key string, fallback int) int {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, errorResponse(err.Error()))
	case errors.Is(err, service.ErrNotFound), errors.Is(err, dashboard.ErrUnknownMaxView), errors.Is(err, dashboard.ErrUnknownReport):
		c.JSON(http.StatusNotFound, errorResponse(err.Error()))
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusUnprocessableEntity, errorResponse(err.Error()))
	case errors.Is(err, ticket.ErrBusy):
		c.JSON(http.StatusConflict, errorResponse(err.Error()))
	case errors.Is(err, service.ErrUpstream):
		h.log.Error().Err(err).Msg("upstream error")
		c.JSON(http.StatusBadGateway, errorResponse("upstream unavailable"))
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
