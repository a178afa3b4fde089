package http

import (
	"errors"

	"propfirm-assistant/internal/assistant"
	"propfirm-assistant/internal/assistant/repository/sqlite"
	pkgErrors "propfirm-assistant/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, assistant.ErrEmptyQuestion):
		return pkgErrors.NewHTTPError(400, "question is required")
	case errors.Is(err, sqlite.ErrFirmNotFound):
		return pkgErrors.NewHTTPError(404, "unknown firm")
	case errors.Is(err, assistant.ErrNoContext):
		return pkgErrors.NewHTTPError(404, "no data available for this question")
	case errors.Is(err, assistant.ErrGeneration):
		return pkgErrors.NewHTTPError(502, "answer generation is temporarily unavailable")
	default:
		return pkgErrors.NewHTTPError(500, "internal error")
	}
}
