package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/readflow/internal/models"
)

// ingestRequest — единый запрос с дискриминатором действия.
type ingestRequest struct {
	Action      string   `json:"action"`
	UserID      string   `json:"user_id"`
	URL         string   `json:"url,omitempty"`
	FeedID      string   `json:"feed_id,omitempty"`
	CategoryIDs []string `json:"category_ids,omitempty"`
}

type discoverResponse struct {
	Success     bool   `json:"success"`
	FeedURL     string `json:"feed_url"`
	Title       string `json:"title"`
	Description string `json:"description"`
	SiteURL     string `json:"site_url"`
	ItemCount   int    `json:"item_count"`
}

type feedPayload struct {
	ID            string     `json:"id"`
	UserID        string     `json:"user_id"`
	FeedURL       string     `json:"feed_url"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	SiteURL       string     `json:"site_url"`
	LastFetchedAt *time.Time `json:"last_fetched_at"`
	FetchError    *string    `json:"fetch_error"`
	ItemCount     int64      `json:"item_count"`
	IsPaused      bool       `json:"is_paused"`
	CreatedAt     time.Time  `json:"created_at"`
}

type subscribeResponse struct {
	Success    bool        `json:"success"`
	Feed       feedPayload `json:"feed"`
	ItemsAdded int         `json:"items_added"`
}

type fetchResponse struct {
	Success  bool `json:"success"`
	NewItems int  `json:"new_items"`
}

type feedErrorPayload struct {
	FeedID string `json:"feed_id"`
	Error  string `json:"error"`
}

type fetchAllResponse struct {
	Success        bool               `json:"success"`
	FeedsRefreshed int                `json:"feeds_refreshed"`
	NewItems       int                `json:"new_items"`
	Errors         []feedErrorPayload `json:"errors,omitempty"`
}

// Ingest — POST /: единая точка входа пайплайна.
//
// Действия: discover | subscribe | fetch | fetch_all. Валидация формы
// запроса (обязательность action/user_id/url/feed_id, корректность UUID)
// выполняется здесь; доменные правила — в сервисе.
func (h *Handlers) Ingest(w http.ResponseWriter, r *http.Request) {
	var req ingestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid json body")
		return
	}

	if req.Action == "" || req.UserID == "" {
		writeBadRequest(w, "action and user_id required")
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		writeBadRequest(w, "invalid user_id")
		return
	}

	switch req.Action {
	case "discover":
		h.discover(w, r, req)
	case "subscribe":
		h.subscribe(w, r, userID, req)
	case "fetch":
		h.fetch(w, r, userID, req)
	case "fetch_all":
		h.fetchAll(w, r, userID)
	default:
		writeBadRequest(w, "Unknown action")
	}
}

func (h *Handlers) discover(w http.ResponseWriter, r *http.Request, req ingestRequest) {
	if req.URL == "" {
		writeBadRequest(w, "url required")
		return
	}

	preview, err := h.service.Discover(r.Context(), req.URL)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, discoverResponse{
		Success:     true,
		FeedURL:     preview.FeedURL,
		Title:       preview.Title,
		Description: preview.Description,
		SiteURL:     preview.SiteURL,
		ItemCount:   preview.ItemCount,
	})
}

func (h *Handlers) subscribe(w http.ResponseWriter, r *http.Request, userID uuid.UUID, req ingestRequest) {
	if req.URL == "" {
		writeBadRequest(w, "url required")
		return
	}

	categoryIDs := make([]uuid.UUID, 0, len(req.CategoryIDs))
	for _, raw := range req.CategoryIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeBadRequest(w, "invalid category_ids")
			return
		}

		categoryIDs = append(categoryIDs, id)
	}

	feed, err := h.service.Subscribe(r.Context(), userID, req.URL, categoryIDs)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, subscribeResponse{
		Success:    true,
		Feed:       feedToPayload(*feed),
		ItemsAdded: int(feed.ItemCount),
	})
}

func (h *Handlers) fetch(w http.ResponseWriter, r *http.Request, userID uuid.UUID, req ingestRequest) {
	if req.FeedID == "" {
		writeBadRequest(w, "feed_id required")
		return
	}

	feedID, err := uuid.Parse(req.FeedID)
	if err != nil {
		writeBadRequest(w, "invalid feed_id")
		return
	}

	newItems, err := h.service.Fetch(r.Context(), userID, feedID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, fetchResponse{
		Success:  true,
		NewItems: newItems,
	})
}

func (h *Handlers) fetchAll(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	summary, err := h.service.FetchAll(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := fetchAllResponse{
		Success:        true,
		FeedsRefreshed: summary.FeedsRefreshed,
		NewItems:       summary.NewItems,
	}
	for _, fe := range summary.Errors {
		resp.Errors = append(resp.Errors, feedErrorPayload{
			FeedID: fe.FeedID.String(),
			Error:  fe.Error,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

// feedToPayload маппит доменную подписку в JSON-представление:
// нулевые значения становятся JSON null.
func feedToPayload(feed models.Feed) feedPayload {
	p := feedPayload{
		ID:          feed.ID.String(),
		UserID:      feed.UserID.String(),
		FeedURL:     feed.FeedURL,
		Title:       feed.Title,
		Description: feed.Description,
		SiteURL:     feed.SiteURL,
		ItemCount:   feed.ItemCount,
		IsPaused:    feed.IsPaused,
		CreatedAt:   feed.CreatedAt,
	}

	if !feed.LastFetchedAt.IsZero() {
		t := feed.LastFetchedAt
		p.LastFetchedAt = &t
	}
	if feed.FetchError != "" {
		e := feed.FetchError
		p.FetchError = &e
	}

	return p
}
