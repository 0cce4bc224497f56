package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paydesk/paydesk/internal/common"
	"github.com/paydesk/paydesk/internal/listview"
	"github.com/paydesk/paydesk/internal/model"
	"github.com/paydesk/paydesk/internal/service"
)

// newTestClient points a client at the test server with retries fast
// enough for unit tests.
func newTestClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()

	client, err := NewClient(Config{
		BaseURL: srv.URL,
		Token:   "test-token",
		Timeout: 5 * time.Second,
	})
	require.NoError(t, err)

	client.retryOpts = service.RetryOptions{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
	}
	return client
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		wantErr error
	}{
		{name: "valid https", baseURL: "https://api.example.com/v1"},
		{name: "valid http", baseURL: "http://localhost:8080"},
		{name: "empty", baseURL: "", wantErr: common.ErrMissingConfig},
		{name: "blank", baseURL: "   ", wantErr: common.ErrMissingConfig},
		{name: "not a url scheme", baseURL: "ftp://api.example.com", wantErr: common.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{BaseURL: tt.baseURL}
			err := cfg.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestClient_Transactions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transactions", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "RET001", r.URL.Query().Get("user_id"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "success",
			"message": "ok",
			"data": {
				"transactions": [
					{"transaction_id": "T1", "status": "success", "amount": 199, "created_at": "2026-03-01 10:15:00"},
					{"transaction_id": "T2", "status": "FAILURE", "amount": "49.50", "created_at": "2026-03-02 11:00:00"}
				]
			}
		}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	rows, err := client.Transactions(context.Background(), "RET001", listview.Query{})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "T1", rows[0].ID)
	assert.Equal(t, model.StatusSuccess, rows[0].Status)
	assert.InDelta(t, 199.0, rows[0].Amount.Float64(), 0.001)

	// FAILURE normalizes to FAILED, string amounts parse.
	assert.Equal(t, model.StatusFailed, rows[1].Status)
	assert.InDelta(t, 49.50, rows[1].Amount.Float64(), 0.001)
}

func TestClient_ListQueryParams(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = map[string]string{}
		for k := range r.URL.Query() {
			got[k] = r.URL.Query().Get(k)
		}
		_, _ = w.Write([]byte(`{"status":"success","data":{"transactions":[]}}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv)

	t.Run("bounds are sent", func(t *testing.T) {
		_, err := client.Transactions(context.Background(), "RET001", listview.Query{
			StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
			Status:    "FAILED",
			Limit:     50,
			Offset:    100,
		})
		require.NoError(t, err)

		assert.Equal(t, "RET001", got["user_id"])
		assert.Equal(t, "2026-03-01", got["start_date"])
		assert.Equal(t, "2026-03-15", got["end_date"])
		assert.Equal(t, "FAILED", got["status"])
		assert.Equal(t, "50", got["limit"])
		assert.Equal(t, "100", got["offset"])
	})

	t.Run("ALL status is omitted", func(t *testing.T) {
		_, err := client.Transactions(context.Background(), "RET001", listview.Query{Status: listview.StatusAll})
		require.NoError(t, err)

		_, present := got["status"]
		assert.False(t, present)
	})
}

func TestClient_NotFoundIsEmptyList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	rows, err := client.Ledger(context.Background(), "RET001", listview.Query{})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestClient_ErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"error","message":"Insufficient wallet balance"}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	_, err := client.Transactions(context.Background(), "RET001", listview.Query{})
	require.Error(t, err)
	assert.Equal(t, "Insufficient wallet balance", common.UserMessage(err))
}

func TestClient_UnauthorizedIsSessionExpired(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	_, err := client.Transactions(context.Background(), "RET001", listview.Query{})
	assert.ErrorIs(t, err, common.ErrSessionExpired)
	assert.Equal(t, int32(1), calls.Load(), "auth failures must not be retried")
}

func TestClient_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"status":"success","data":{"transactions":[{"transaction_id":"T1"}]}}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	rows, err := client.Transactions(context.Background(), "RET001", listview.Query{})
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_GivesUpAfterMaxAttempts(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	_, err := client.Transactions(context.Background(), "RET001", listview.Query{})
	assert.ErrorIs(t, err, common.ErrMaxRetries)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_Login(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		_, _ = w.Write([]byte(`{"status":"success","message":"Welcome","data":{"access_token":"jwt-here"}}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	token, err := client.Login(context.Background(), "RET001", "secret")
	require.NoError(t, err)
	assert.Equal(t, "jwt-here", token)
}

func TestClient_LoginWithoutToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"success","message":"Welcome","data":{}}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	_, err := client.Login(context.Background(), "RET001", "secret")
	assert.Error(t, err)
}

func TestFetchAll(t *testing.T) {
	pageFor := func(offset, limit, total int) []model.Transaction {
		var out []model.Transaction
		for i := offset; i < offset+limit && i < total; i++ {
			out = append(out, model.Transaction{ID: "T" + string(rune('A'+i%26))})
		}
		return out
	}

	t.Run("exhausts every page", func(t *testing.T) {
		const total = 450
		var lastProgress int
		source := func(ctx context.Context, q listview.Query) ([]model.Transaction, error) {
			return pageFor(q.Offset, q.Limit, total), nil
		}

		rows, err := FetchAll(context.Background(), source, listview.Query{}, func(fetched int) {
			lastProgress = fetched
		})
		require.NoError(t, err)
		assert.Len(t, rows, total)
		assert.Equal(t, total, lastProgress)
	})

	t.Run("empty source", func(t *testing.T) {
		source := func(ctx context.Context, q listview.Query) ([]model.Transaction, error) {
			return nil, nil
		}
		rows, err := FetchAll(context.Background(), source, listview.Query{}, nil)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}
