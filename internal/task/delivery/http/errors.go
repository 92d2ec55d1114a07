package http

import (
	"net/http"

	"smart-task-dashboard/internal/task"
	pkgErrors "smart-task-dashboard/pkg/errors"
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
// Unknown errors pass through and become 500 in response.Error.
func (h *handler) mapError(err error) error {
	switch err {
	case task.ErrEmptyInput:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "text must not be empty")
	case task.ErrInvalidFilter:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "filter must be one of all, active, completed")
	case task.ErrInvalidPriority:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "priority must be one of low, medium, high")
	case task.ErrInvalidAnalysis:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "analysis must carry a category and a priority")
	case task.ErrTaskNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "task not found")
	default:
		return err
	}
}
