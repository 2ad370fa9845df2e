package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/jonathan/hr-analytics/internal/reports"
	"github.com/jonathan/hr-analytics/internal/types"
)

// reportDescriptor is the list entry returned by GET /api/v1/reports.
type reportDescriptor struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// reportResponse wraps a computed report for transport.
type reportResponse struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	AsOf  string `json:"as_of"`
	Data  any    `json:"data"`
}

// handleListReports returns the available report names and titles.
func (s *Server) handleListReports(c echo.Context) error {
	all := reports.All()
	out := make([]reportDescriptor, 0, len(all))
	for _, r := range all {
		out = append(out, reportDescriptor{
			Name:  r.Name,
			Title: r.Title,
			URL:   "/api/v1/reports/" + r.Name,
		})
	}
	return c.JSON(http.StatusOK, out)
}

// handleGetReport computes a single report over the latest cleaned snapshot.
// An as_of query parameter (YYYY-MM-DD) overrides the server default for
// tenure and turnover calculations.
func (s *Server) handleGetReport(c echo.Context) error {
	name := c.Param("name")
	report, ok := reports.ByName(name)
	if !ok {
		return s.errorResponse(c, http.StatusNotFound, fmt.Sprintf("unknown report: %s", name))
	}

	asOf := s.asOf
	if raw := c.QueryParam("as_of"); raw != "" {
		parsed, err := time.Parse(types.DateLayout, raw)
		if err != nil {
			return s.errorResponse(c, http.StatusBadRequest, "as_of must be YYYY-MM-DD")
		}
		asOf = parsed
	}

	employees, err := s.source.LoadEmployees(c.Request().Context())
	if err != nil {
		s.logger.Error("failed to load employees", zap.Error(err))
		return s.errorResponse(c, http.StatusInternalServerError, "failed to load employees")
	}

	return c.JSON(http.StatusOK, reportResponse{
		Name:  report.Name,
		Title: report.Title,
		AsOf:  asOf.Format(types.DateLayout),
		Data:  report.Compute(employees, asOf),
	})
}

// handleListEmployees returns the cleaned snapshot, optionally filtered
// by department, state or employment status.
func (s *Server) handleListEmployees(c echo.Context) error {
	employees, err := s.source.LoadEmployees(c.Request().Context())
	if err != nil {
		s.logger.Error("failed to load employees", zap.Error(err))
		return s.errorResponse(c, http.StatusInternalServerError, "failed to load employees")
	}

	department := c.QueryParam("department")
	state := c.QueryParam("state")
	status := c.QueryParam("status")

	filtered := make([]types.Employee, 0, len(employees))
	for _, e := range employees {
		if department != "" && e.Department != department {
			continue
		}
		if state != "" && e.LocationState != state {
			continue
		}
		if status != "" && e.Termination.Status.String() != status {
			continue
		}
		filtered = append(filtered, e)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"total":     len(filtered),
		"employees": filtered,
	})
}

// handleLatestRun returns metadata for the most recent cleaning run.
func (s *Server) handleLatestRun(c echo.Context) error {
	run, err := s.source.LatestRun(c.Request().Context())
	if err != nil {
		s.logger.Error("failed to load latest run", zap.Error(err))
		return s.errorResponse(c, http.StatusInternalServerError, "failed to load latest run")
	}
	if run == nil {
		return s.errorResponse(c, http.StatusNotFound, "no cleaning runs recorded")
	}
	return c.JSON(http.StatusOK, run)
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{"error": message})
}
