package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/getaroundlab/pricing/core/scenario"
)

// scenarios lists the rows of one scope, or every scope when no filter is
// given.
func (s *Server) scenarios(c *gin.Context) {
	if !s.tableReady(c) {
		return
	}
	scope := c.Query("scope")
	if scope == "" {
		out := make(map[string][]scenario.Row)
		for _, sc := range s.table.Scopes() {
			out[sc] = s.table.Rows(sc)
		}
		c.JSON(http.StatusOK, gin.H{"scopes": out})
		return
	}
	rows := s.table.Rows(scope)
	if len(rows) == 0 {
		c.JSON(http.StatusNotFound, errorResponse{
			ErrorType: "scenario_not_found",
			Message:   "unknown scope " + strconv.Quote(scope),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"scope": scope, "rows": rows})
}

// scenarioDetail returns one row together with its classification and the
// scope recommendation, which is what the dashboard renders for a selected
// (scope, buffer) pair.
func (s *Server) scenarioDetail(c *gin.Context) {
	if !s.tableReady(c) {
		return
	}
	scope := c.Param("scope")
	buffer, err := strconv.Atoi(c.Param("buffer"))
	if err != nil || buffer < 0 {
		c.JSON(http.StatusBadRequest, errorResponse{
			ErrorType: "request_shape_error",
			Message:   "buffer must be a non-negative integer",
		})
		return
	}

	row, err := s.table.Lookup(scope, buffer)
	if err != nil {
		if errors.Is(err, scenario.ErrNotFound) {
			c.JSON(http.StatusNotFound, errorResponse{ErrorType: "scenario_not_found", Message: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse{ErrorType: "internal_error", Message: err.Error()})
		return
	}

	rec := s.recs[scope]
	c.JSON(http.StatusOK, gin.H{
		"row":            row,
		"status":         scenario.Classify(row.BlockedRatio, row.ConflictsResolvedRatio),
		"recommendation": rec,
		"recommended":    rec.BufferHours == row.BufferHours,
	})
}

// recommendations returns the per-scope recommended buffer map.
func (s *Server) recommendations(c *gin.Context) {
	if !s.tableReady(c) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": s.recs})
}

func (s *Server) tableReady(c *gin.Context) bool {
	if s.table == nil {
		c.JSON(http.StatusServiceUnavailable, errorResponse{
			ErrorType: "scenario_table_unavailable",
			Message:   "scenario table was not loaded at startup",
		})
		return false
	}
	return true
}
