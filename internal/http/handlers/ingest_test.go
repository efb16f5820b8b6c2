package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/readflow/internal/config"
	"github.com/pribylovaa/readflow/internal/discovery"
	"github.com/pribylovaa/readflow/internal/models"
	"github.com/pribylovaa/readflow/internal/service"
	"github.com/pribylovaa/readflow/internal/storage"
	"github.com/pribylovaa/readflow/mocks"
)

// Тесты HTTP-обработчика Ingest (ingest.go):
// — валидация формы запроса (обязательные поля, UUID, неизвестное действие);
// — формы успешных ответов всех четырёх действий;
// — маппинг доменных ошибок в статусы и плоское {"error": ...}.

const rssBody = `<?xml version="1.0"?><rss version="2.0"><channel>
<title>Blog</title><link>https://example.org</link><description>about</description>
<item><guid>g1</guid><title>one</title></item>
<item><guid>g2</guid><title>two</title></item>
</channel></rss>`

type stubFetcher struct {
	bodies map[string]string
}

func (s *stubFetcher) Fetch(_ context.Context, url string) ([]byte, error) {
	body, ok := s.bodies[url]
	if !ok {
		return nil, errors.New("fetch failed: " + url)
	}
	return []byte(body), nil
}

type stubDiscoverer struct {
	feedURL string
	body    string
	err     error
}

func (s *stubDiscoverer) Discover(_ context.Context, _ string) (string, []byte, error) {
	if s.err != nil {
		return "", nil, s.err
	}
	return s.feedURL, []byte(s.body), nil
}

func newHandlers(st *mocks.MockStorage, f service.Fetcher, d service.Discoverer) *Handlers {
	return New(service.New(st, f, d, config.Config{}))
}

func doIngest(t *testing.T, h *Handlers, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.Ingest(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}

// TestIngest_Validation — битый JSON, отсутствующие поля, неизвестное действие.
func TestIngest_Validation(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h := newHandlers(mocks.NewMockStorage(ctrl), &stubFetcher{}, &stubDiscoverer{})

	cases := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"broken json", `{not json`, "invalid json body"},
		{"missing action", `{"user_id": "` + uuid.NewString() + `"}`, "action and user_id required"},
		{"missing user_id", `{"action": "discover"}`, "action and user_id required"},
		{"bad user_id", `{"action": "discover", "user_id": "not-a-uuid"}`, "invalid user_id"},
		{"unknown action", `{"action": "explode", "user_id": "` + uuid.NewString() + `"}`, "Unknown action"},
		{"discover without url", `{"action": "discover", "user_id": "` + uuid.NewString() + `"}`, "url required"},
		{"fetch without feed_id", `{"action": "fetch", "user_id": "` + uuid.NewString() + `"}`, "feed_id required"},
	}

	for _, tc := range cases {
		rr := doIngest(t, h, tc.body)
		require.Equal(t, http.StatusBadRequest, rr.Code, tc.name)
		require.Equal(t, tc.wantErr, decodeBody(t, rr)["error"], tc.name)
	}
}

// TestIngest_DiscoverOK — превью ленты в плоском успешном ответе.
func TestIngest_DiscoverOK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h := newHandlers(mocks.NewMockStorage(ctrl), &stubFetcher{}, &stubDiscoverer{
		feedURL: "https://example.org/rss",
		body:    rssBody,
	})

	rr := doIngest(t, h, `{"action": "discover", "user_id": "`+uuid.NewString()+`", "url": "https://example.org"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	body := decodeBody(t, rr)
	require.Equal(t, true, body["success"])
	require.Equal(t, "https://example.org/rss", body["feed_url"])
	require.Equal(t, "Blog", body["title"])
	require.Equal(t, float64(2), body["item_count"])
}

// TestIngest_DiscoverNotFound — ErrNoFeed -> 404 с человекочитаемым сообщением.
func TestIngest_DiscoverNotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h := newHandlers(mocks.NewMockStorage(ctrl), &stubFetcher{}, &stubDiscoverer{err: discovery.ErrNoFeed})

	rr := doIngest(t, h, `{"action": "discover", "user_id": "`+uuid.NewString()+`", "url": "https://example.org"}`)
	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Contains(t, decodeBody(t, rr)["error"], "Could not find")
}

// TestIngest_DiscoverNotFound_Diagnostic — тело 404 дополняется сообщением
// последнего сбоя кандидата.
func TestIngest_DiscoverNotFound_Diagnostic(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h := newHandlers(mocks.NewMockStorage(ctrl), &stubFetcher{}, &stubDiscoverer{
		err: &discovery.NoFeedError{
			URL:  "https://example.org",
			Last: errors.New("fetch failed: https://example.org/index.xml"),
		},
	})

	rr := doIngest(t, h, `{"action": "discover", "user_id": "`+uuid.NewString()+`", "url": "https://example.org"}`)
	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t,
		"Could not find RSS/Atom feed for this URL. fetch failed: https://example.org/index.xml",
		decodeBody(t, rr)["error"])
}

// TestIngest_SubscribeOK — 200 c вложенным объектом подписки и items_added.
func TestIngest_SubscribeOK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	st := mocks.NewMockStorage(ctrl)

	st.EXPECT().SaveFeed(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f models.Feed) (uuid.UUID, error) { return f.ID, nil })
	st.EXPECT().SaveItems(gomock.Any(), gomock.Len(2)).Return(2, nil)

	h := newHandlers(st, &stubFetcher{bodies: map[string]string{
		"https://example.org/rss": rssBody,
	}}, &stubDiscoverer{})

	rr := doIngest(t, h, `{"action": "subscribe", "user_id": "`+uuid.NewString()+`", "url": "https://example.org/rss"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	body := decodeBody(t, rr)
	require.Equal(t, true, body["success"])
	require.Equal(t, float64(2), body["items_added"])

	feed, ok := body["feed"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "https://example.org/rss", feed["feed_url"])
	require.Equal(t, "Blog", feed["title"])
	require.NotNil(t, feed["last_fetched_at"])
	require.Nil(t, feed["fetch_error"])
}

// TestIngest_SubscribeConflict — повторная подписка -> 409.
func TestIngest_SubscribeConflict(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	st := mocks.NewMockStorage(ctrl)
	st.EXPECT().SaveFeed(gomock.Any(), gomock.Any()).Return(uuid.Nil, storage.ErrAlreadyExists)

	h := newHandlers(st, &stubFetcher{bodies: map[string]string{
		"https://example.org/rss": rssBody,
	}}, &stubDiscoverer{})

	rr := doIngest(t, h, `{"action": "subscribe", "user_id": "`+uuid.NewString()+`", "url": "https://example.org/rss"}`)
	require.Equal(t, http.StatusConflict, rr.Code)
	require.Equal(t, "Already subscribed to this feed", decodeBody(t, rr)["error"])
}

// TestIngest_FetchOK — 200 с числом вставленных записей.
func TestIngest_FetchOK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	st := mocks.NewMockStorage(ctrl)

	userID := uuid.New()
	feedID := uuid.New()
	fd := models.Feed{ID: feedID, UserID: userID, FeedURL: "https://example.org/rss"}

	st.EXPECT().FeedByID(gomock.Any(), userID, feedID).Return(fd, nil)
	st.EXPECT().GUIDsByFeed(gomock.Any(), feedID).Return(map[string]struct{}{"g1": {}}, nil)
	st.EXPECT().SaveItems(gomock.Any(), gomock.Len(1)).Return(1, nil)
	st.EXPECT().UpdateFeedAfterSync(gomock.Any(), feedID, gomock.Any(), "", 1).Return(nil)

	h := newHandlers(st, &stubFetcher{bodies: map[string]string{
		"https://example.org/rss": rssBody,
	}}, &stubDiscoverer{})

	rr := doIngest(t, h, `{"action": "fetch", "user_id": "`+userID.String()+`", "feed_id": "`+feedID.String()+`"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	body := decodeBody(t, rr)
	require.Equal(t, true, body["success"])
	require.Equal(t, float64(1), body["new_items"])
}

// TestIngest_FetchNotFound — чужая подписка -> 404 "Feed not found".
func TestIngest_FetchNotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	st := mocks.NewMockStorage(ctrl)
	st.EXPECT().FeedByID(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Feed{}, storage.ErrNotFound)

	h := newHandlers(st, &stubFetcher{}, &stubDiscoverer{})

	rr := doIngest(t, h, `{"action": "fetch", "user_id": "`+uuid.NewString()+`", "feed_id": "`+uuid.NewString()+`"}`)
	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, "Feed not found", decodeBody(t, rr)["error"])
}

// TestIngest_FetchAll — сводка с ошибками по упавшим подпискам;
// при отсутствии ошибок поле errors опускается.
func TestIngest_FetchAll(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	st := mocks.NewMockStorage(ctrl)

	userID := uuid.New()
	okFeed := models.Feed{ID: uuid.New(), UserID: userID, FeedURL: "https://example.org/rss"}
	badFeed := models.Feed{ID: uuid.New(), UserID: userID, FeedURL: "https://down.example/rss"}

	st.EXPECT().ActiveFeedsByUser(gomock.Any(), userID).Return([]models.Feed{okFeed, badFeed}, nil)
	st.EXPECT().GUIDsByFeed(gomock.Any(), okFeed.ID).Return(map[string]struct{}{}, nil)
	st.EXPECT().SaveItems(gomock.Any(), gomock.Len(2)).Return(2, nil)
	st.EXPECT().UpdateFeedAfterSync(gomock.Any(), okFeed.ID, gomock.Any(), "", 2).Return(nil)
	st.EXPECT().UpdateFeedAfterSync(gomock.Any(), badFeed.ID, gomock.Any(), gomock.Not(""), 0).Return(nil)

	h := newHandlers(st, &stubFetcher{bodies: map[string]string{
		"https://example.org/rss": rssBody,
	}}, &stubDiscoverer{})

	rr := doIngest(t, h, `{"action": "fetch_all", "user_id": "`+userID.String()+`"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	body := decodeBody(t, rr)
	require.Equal(t, true, body["success"])
	require.Equal(t, float64(1), body["feeds_refreshed"])
	require.Equal(t, float64(2), body["new_items"])

	errs, ok := body["errors"].([]any)
	require.True(t, ok)
	require.Len(t, errs, 1)
	first := errs[0].(map[string]any)
	require.Equal(t, badFeed.ID.String(), first["feed_id"])
	require.NotEmpty(t, first["error"])
}

// TestIngest_FetchAllNoErrors — поле errors отсутствует в JSON при пустой сводке.
func TestIngest_FetchAllNoErrors(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	st := mocks.NewMockStorage(ctrl)

	userID := uuid.New()
	st.EXPECT().ActiveFeedsByUser(gomock.Any(), userID).Return(nil, nil)

	h := newHandlers(st, &stubFetcher{}, &stubDiscoverer{})

	rr := doIngest(t, h, `{"action": "fetch_all", "user_id": "`+userID.String()+`"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	body := decodeBody(t, rr)
	require.Equal(t, true, body["success"])
	_, present := body["errors"]
	require.False(t, present)
}
