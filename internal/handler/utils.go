package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/brunomguimaraes/fsoverflow-developer-api/internal/errdefs"
	"github.com/brunomguimaraes/fsoverflow-developer-api/internal/logging"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

var ErrBadRequest = errors.New("bad request")

func mapErr(err error) int {
	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytesErr):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrBadRequest), errors.Is(err, errdefs.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, errdefs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errdefs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errdefs.ErrAuthentication):
		return http.StatusUnauthorized
	case errors.Is(err, errdefs.ErrPermissionDenied):
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}

// errorMessage hides the details of unexpected failures from clients.
func errorMessage(statusCode int, err error) string {
	if statusCode == http.StatusInternalServerError {
		return http.StatusText(statusCode)
	}
	return err.Error()
}

// Handle decodes an optional JSON body into Req, lets reqParser fill in path
// and query values, calls method and writes its result as JSON with
// successStatus.
func Handle[Req any, Resp any](
	method func(context.Context, *Req) (Resp, error),
	reqParser func(context.Context, *http.Request, *Req) error,
	parseBody bool,
	successStatus int,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger, _ := logging.GetFromContext(ctx)
		if logger == nil {
			logger = logging.NewNop()
		}

		req := new(Req)

		if parseBody {
			if err := json.NewDecoder(r.Body).Decode(req); err != nil {
				logger.Info(ctx, "Failed to parse request body", zap.Error(err))
				status := mapErr(fmt.Errorf("%w: %w", ErrBadRequest, err))
				writeErrorJSON(w, status, "invalid request body")
				return
			}
		}

		if reqParser != nil {
			if err := reqParser(ctx, r, req); err != nil {
				logger.Info(ctx, "Failed to parse request path and query", zap.Error(err))
				writeErrorJSON(w, mapErr(err), "invalid request parameters")
				return
			}
		}

		resp, err := method(ctx, req)
		if err != nil {
			statusCode := mapErr(err)
			if statusCode == http.StatusInternalServerError {
				logger.Error(ctx, "request failed", zap.Error(err))
			} else {
				logger.Debug(ctx, "request rejected", zap.Int("status", statusCode), zap.Error(err))
			}
			writeErrorJSON(w, statusCode, errorMessage(statusCode, err))
			return
		}

		data, err := json.Marshal(resp)
		if err != nil {
			logger.Error(ctx, "Failed to serialize response", zap.Error(err))
			writeErrorJSON(w, http.StatusInternalServerError, "failed to serialize response")
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(successStatus)
		w.Write(data)
	}
}

func writeErrorJSON(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	resp, _ := json.Marshal(map[string]string{"error": message})
	w.Write(resp)
}

func parsePathParam(r *http.Request, key string) (string, error) {
	val := chi.URLParam(r, key)
	if val == "" {
		return "", fmt.Errorf("%w: missing path param: %s", ErrBadRequest, key)
	}
	return val, nil
}

func parseIDParam(r *http.Request, key string) (int64, error) {
	val, err := parsePathParam(r, key)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(val, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s: %q", ErrBadRequest, key, val)
	}
	return id, nil
}
