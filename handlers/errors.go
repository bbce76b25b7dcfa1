// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/deliberation/middleware"
	"github.com/danielhkuo/deliberation/store"
)

// writeStoreError maps store errors onto HTTP status codes
func writeStoreError(w http.ResponseWriter, err error, attrs ...any) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
	case errors.Is(err, store.ErrValidation),
		errors.Is(err, store.ErrInvalidRating),
		errors.Is(err, store.ErrInvalidIndex):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error("store operation failed", append([]any{"error", err}, attrs...)...)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
	}
}
