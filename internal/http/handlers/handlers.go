// handlers — HTTP-обработчики feeds-сервиса.
//
// Контракт ответа: успех несёт success: true, ошибка — плоский объект
// {"error": "<сообщение>"}. Маппинг доменных ошибок в статусы:
// ErrInvalidArgument -> 400, ErrNotFound/ErrNoFeed -> 404,
// ErrAlreadyExists -> 409, прочее -> 500 без утечки деталей.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/pribylovaa/readflow/internal/discovery"
	"github.com/pribylovaa/readflow/internal/service"

	logctx "github.com/pribylovaa/readflow/pkg/log"
)

// Handlers агрегирует зависимости HTTP-слоя.
type Handlers struct {
	service *service.Service
}

func New(s *service.Service) *Handlers {
	return &Handlers{service: s}
}

// errorResponse — плоский формат ошибки.
type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON — единый ответ JSON с нужным Content-Type.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// writeBadRequest — 400 с конкретным сообщением валидации.
func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: message})
}

// writeError маппит доменную ошибку сервиса в HTTP-статус и безопасное
// сообщение. Внутренние детали остаются в логах.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidArgument):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid argument"})
	case errors.Is(err, service.ErrNoFeed):
		// Диагностика последнего сбоя дискавери дополняет тело 404.
		msg := "Could not find RSS/Atom feed for this URL"
		var noFeed *discovery.NoFeedError
		if errors.As(err, &noFeed) && noFeed.Diagnostic() != "" {
			msg += ". " + noFeed.Diagnostic()
		}

		writeJSON(w, http.StatusNotFound, errorResponse{Error: msg})
	case errors.Is(err, service.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Feed not found"})
	case errors.Is(err, service.ErrAlreadyExists):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "Already subscribed to this feed"})
	default:
		logctx.From(r.Context()).LogAttrs(r.Context(), slog.LevelError, "handler_internal_error",
			slog.String("path", r.URL.Path),
			slog.String("err", err.Error()),
		)

		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
