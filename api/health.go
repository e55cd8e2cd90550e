package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) root(c *gin.Context) {
	status := "loaded"
	if !s.handle.Loaded() {
		status = "error"
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "Welcome to the Getaround pricing API.",
		"usage":        "POST /predict with {\"input\": [vehicle features]} to quote a daily price.",
		"model_status": status,
	})
}

func (s *Server) health(c *gin.Context) {
	status := "ok"
	var modelErr *string
	if !s.handle.Loaded() {
		status = "error"
		msg := s.handle.Err.Error()
		modelErr = &msg
	}
	c.JSON(http.StatusOK, gin.H{
		"status":      status,
		"model_path":  s.handle.Path,
		"model_error": modelErr,
		"model_info":  s.handle.Info,
	})
}
