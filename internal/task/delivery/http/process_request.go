package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	pkgErrors "smart-task-dashboard/pkg/errors"
)

// processAnalyzeReq binds the analyze request body.
func (h *handler) processAnalyzeReq(c *gin.Context) (analyzeReq, error) {
	var req analyzeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return req, nil
}

// processCreateReq binds the create request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return req, nil
}

// processListReq binds the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req.Filter = strings.ToLower(strings.TrimSpace(req.Filter))
	req.Category = strings.ToLower(strings.TrimSpace(req.Category))
	req.Priority = strings.ToLower(strings.TrimSpace(req.Priority))
	return req, nil
}

// processIDParam reads the :id path parameter.
func (h *handler) processIDParam(c *gin.Context) (string, error) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return "", pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
	}
	return id, nil
}
