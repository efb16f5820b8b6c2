package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Юнит-тесты загрузчика (fetch.go):
// — браузерные заголовки выставляются на каждый запрос;
// — 2xx возвращает тело как есть;
// — не-2xx и сетевой сбой дают типизированную *Error;
// — отмена контекста прерывает запрос.

// TestFetch_SendsBrowserHeaders — User-Agent и Accept уходят на сервер.
func TestFetch_SendsBrowserHeaders(t *testing.T) {
	t.Parallel()

	var gotUA, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		_, _ = w.Write([]byte("<rss/>"))
	}))
	defer srv.Close()

	f := New(srv.Client())
	body, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Equal(t, "<rss/>", string(body))
	require.Equal(t, browserUA, gotUA)
	require.Contains(t, gotAccept, "application/rss+xml")
}

// TestFetch_Non2xxStatus — 404 превращается в *Error со статусом.
func TestFetch_Non2xxStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	f := New(srv.Client())
	_, err := f.Fetch(context.Background(), srv.URL)
	require.Error(t, err)

	var fetchErr *Error
	require.True(t, errors.As(err, &fetchErr))
	require.Equal(t, http.StatusNotFound, fetchErr.Status)
	require.Equal(t, srv.URL, fetchErr.URL)
}

// TestFetch_NetworkError — закрытый сервер даёт *Error с нулевым статусом.
func TestFetch_NetworkError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	f := New(&http.Client{Timeout: 2 * time.Second})
	_, err := f.Fetch(context.Background(), url)
	require.Error(t, err)

	var fetchErr *Error
	require.True(t, errors.As(err, &fetchErr))
	require.Equal(t, 0, fetchErr.Status)
	require.Error(t, fetchErr.Unwrap())
}

// TestFetch_ContextCanceled — отменённый контекст прерывает запрос до ответа.
func TestFetch_ContextCanceled(t *testing.T) {
	t.Parallel()

	started := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	f := New(srv.Client())
	_, err := f.Fetch(ctx, srv.URL)
	require.Error(t, err)
}

// TestNew_NilClient — nil клиент заменяется дефолтным с таймаутом.
func TestNew_NilClient(t *testing.T) {
	t.Parallel()

	f := New(nil)
	require.NotNil(t, f.client)
	require.Equal(t, 15*time.Second, f.client.Timeout)
}
