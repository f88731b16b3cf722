package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashboard-service/internal/ticket"
)

func TestAnalyticsDashboardUnwrapsEnvelopeAndForwardsToken(t *testing.T) {
	var gotAuth, gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"data": {"level": "region", "charts": {"region_sales": []}}}`))
	}))
	defer srv.Close()

	c := NewAnalyticsClient(srv.URL+"/", time.Second, zerolog.Nop())
	payload, err := c.Dashboard(WithToken(context.Background(), "tok"), DashboardQuery{
		Report: "poOrder",
		Level:  "region",
		From:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, "/dashboard/poOrder", gotPath)
	assert.Equal(t, "from=2024-01-01T00%3A00%3A00Z&level=region", gotQuery)
	assert.Equal(t, "region", payload.String("level", ""))
}

func TestAnalyticsDashboardStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewAnalyticsClient(srv.URL, time.Second, zerolog.Nop())
	_, err := c.Dashboard(context.Background(), DashboardQuery{Report: "sales"})

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.Code)
	assert.Equal(t, "maintenance", statusErr.Body)
}

func TestTicketListAndGet(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/tickets", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "20", r.URL.Query().Get("per_page"))
		_ = json.NewEncoder(w).Encode(map[string]any{"data": []map[string]any{
			{"id": 1, "uuid": "a", "status": "open", "created_at": "2024-03-01T10:00:00Z"},
			{"id": 2, "uuid": "b", "status": "closed", "created_at": "2024-03-02T10:00:00Z"},
		}})
	})
	mux.HandleFunc("/tickets/a", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": {"id": 1, "uuid": "a", "title": "Printer", "severity": "high", "assign_user": "sam", "created_at": "2024-03-01T10:00:00Z"}}`))
	})
	mux.HandleFunc("/tickets/missing", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := NewTicketClient(srv.URL, time.Second, zerolog.Nop())

	list, err := c.List(context.Background(), ListQuery{Page: 2})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, ticket.StatusClosed, list[1].Status)

	got, err := c.Get(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, "Printer", got.Title)
	assert.Equal(t, ticket.SeverityHigh, got.Severity)
	require.NotNil(t, got.AssignUser)
	assert.Equal(t, "sam", *got.AssignUser)

	_, err = c.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTicketUpdateSendsMultipart(t *testing.T) {
	var status, comment, filename, fileBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/tickets/a/update", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		status = r.FormValue("status")
		comment = r.FormValue("comment")
		f, header, err := r.FormFile("attachment")
		require.NoError(t, err)
		defer f.Close()
		filename = header.Filename
		raw, _ := io.ReadAll(f)
		fileBody = string(raw)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewTicketClient(srv.URL, time.Second, zerolog.Nop())
	err := c.Update(context.Background(), "a", ticket.UpdateForm{
		Status:  ticket.StatusResolved,
		Comment: "fixed",
		Attachment: &ticket.Attachment{
			Filename: "log.txt",
			Content:  strings.NewReader("trace"),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "resolved", status)
	assert.Equal(t, "fixed", comment)
	assert.Equal(t, "log.txt", filename)
	assert.Equal(t, "trace", fileBody)
}

func TestTicketUpdateFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":"bad status"}`))
	}))
	defer srv.Close()

	c := NewTicketClient(srv.URL, time.Second, zerolog.Nop())
	err := c.Update(context.Background(), "a", ticket.UpdateForm{Status: ticket.StatusOpen})

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusUnprocessableEntity, statusErr.Code)
}
