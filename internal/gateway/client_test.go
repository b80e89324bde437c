package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/guttosm/food-details-service/internal/circuitbreaker"
	"github.com/guttosm/food-details-service/internal/domain/model"
	"github.com/guttosm/food-details-service/internal/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const foodPayload = `{
	"id": 5,
	"name": "Ao molho",
	"description": "Macarrão ao molho branco",
	"price": 19.9,
	"category": 1,
	"image_url": "https://cdn.example.com/food.png",
	"extras": [
		{"id": 1, "name": "Bacon", "value": 1.5},
		{"id": 2, "name": "Frango", "value": 2, "quantity": 9}
	]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, opts...)
}

func TestClient_GetFood(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/foods/5", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, foodPayload)
	})

	food, err := client.GetFood(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, int64(5), food.ID)
	assert.Equal(t, "Ao molho", food.Name)
	assert.True(t, decimal.RequireFromString("19.9").Equal(food.Price))
	require.Len(t, food.Extras, 2)
	assert.Equal(t, "Frango", food.Extras[1].Name)
}

func TestClient_ListFavorites(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/favorites", r.URL.Path)
		_, _ = io.WriteString(w, `[{"id": 1}, {"id": 5}]`)
	})

	favorites, err := client.ListFavorites(context.Background())

	require.NoError(t, err)
	assert.True(t, model.ContainsFood(favorites, 5))
	assert.Len(t, favorites, 2)
}

func TestClient_AddFavorite(t *testing.T) {
	var body map[string]interface{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/favorites", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id": 5}`)
	})

	err := client.AddFavorite(context.Background(), model.Favorite{
		ID:          5,
		Name:        "Ao molho",
		Description: "desc",
		Price:       decimal.RequireFromString("19.9"),
		ImageURL:    "img.png",
		Category:    1,
	})

	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{
		"id":          float64(5),
		"name":        "Ao molho",
		"description": "desc",
		"price":       19.9,
		"image_url":   "img.png",
		"category":    float64(1),
	}, body)
}

func TestClient_RemoveFavorite(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/favorites/5", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, client.RemoveFavorite(context.Background(), 5))
}

func TestClient_CreateOrder(t *testing.T) {
	var body map[string]interface{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusCreated)
	})

	err := client.CreateOrder(context.Background(), model.Order{
		ProductID:    5,
		Name:         "Ao molho",
		Category:     1,
		ThumbnailURL: "img.png",
		Price:        decimal.RequireFromString("11"),
		Extras: []model.Extra{
			{ID: 1, Name: "Bacon", Value: decimal.RequireFromString("1.5"), Quantity: 2},
			{ID: 2, Name: "Free", Value: decimal.Zero, Quantity: 0},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, float64(5), body["product_id"])
	assert.Equal(t, "img.png", body["thumbnail_url"])
	assert.Equal(t, float64(11), body["price"])
	extras, ok := body["extras"].([]interface{})
	require.True(t, ok)
	assert.Len(t, extras, 2)
}

func TestClient_ErrorClassification(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		kind     Kind
		sentinel error
	}{
		{name: "not found", status: http.StatusNotFound, kind: KindNotFound, sentinel: ErrNotFound},
		{name: "server error", status: http.StatusInternalServerError, body: "boom", kind: KindServer, sentinel: ErrServer},
		{name: "bad request counts as server error", status: http.StatusBadRequest, kind: KindServer, sentinel: ErrServer},
		{name: "malformed body", status: http.StatusOK, body: "{not json", kind: KindDecode, sentinel: ErrDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			_, err := client.GetFood(context.Background(), 1)

			require.Error(t, err)
			assert.Equal(t, tt.kind, KindOf(err))
			assert.ErrorIs(t, err, tt.sentinel)

			var gwErr *Error
			require.True(t, errors.As(err, &gwErr))
			assert.Equal(t, OpGetFood, gwErr.Op)
			assert.Equal(t, tt.status, gwErr.StatusCode)
		})
	}
}

func TestClient_LogsFailedRequest(t *testing.T) {
	var buf bytes.Buffer
	logger.InitWithWriter("debug", false, &buf)
	t.Cleanup(func() { logger.InitWithWriter("info", false, &bytes.Buffer{}) })

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.GetFood(context.Background(), 5)

	require.Error(t, err)
	assert.Contains(t, buf.String(), "Gateway request failed")
	assert.Contains(t, buf.String(), `"operation":"`+OpGetFood+`"`)
	assert.Contains(t, buf.String(), `"path":"/foods/5"`)
}

func TestClient_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := NewClient(url)

	_, err := client.ListFavorites(context.Background())

	assert.ErrorIs(t, err, ErrNetwork)
	assert.Equal(t, KindNetwork, KindOf(err))
}

func TestClient_Timeout(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(time.Second):
		case <-r.Context().Done():
		}
	}, WithTimeout(20*time.Millisecond))

	_, err := client.GetFood(context.Background(), 1)

	assert.ErrorIs(t, err, ErrNetwork)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClient_CircuitBreaker(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}, WithCircuitBreaker(circuitbreaker.Config{
		FailureThreshold: 2,
		SuccessThreshold: 1,
		Timeout:          time.Minute,
	}))

	_, _ = client.GetFood(context.Background(), 1)
	_, _ = client.GetFood(context.Background(), 1)
	_, err := client.GetFood(context.Background(), 1)

	assert.Equal(t, int32(2), calls.Load())
	assert.ErrorIs(t, err, ErrNetwork)
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
	assert.Equal(t, circuitbreaker.StateOpen, client.CircuitBreaker().State())
	assert.Equal(t, "food_api", client.CircuitBreaker().Name())
}

func TestClient_NotFoundDoesNotOpenCircuit(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}, WithCircuitBreaker(circuitbreaker.Config{
		FailureThreshold: 1,
		SuccessThreshold: 1,
		Timeout:          time.Minute,
	}))

	for i := 0; i < 3; i++ {
		_, err := client.GetFood(context.Background(), 99)
		assert.ErrorIs(t, err, ErrNotFound)
	}
	assert.Equal(t, circuitbreaker.StateClosed, client.CircuitBreaker().State())
}

func TestError_Message(t *testing.T) {
	err := &Error{Op: OpCreateOrder, Kind: KindServer, StatusCode: 500, Err: errors.New("boom")}
	assert.Equal(t, "gateway create_order: server_error (status 500): boom", err.Error())

	assert.Equal(t, KindUnknown, KindOf(errors.New("other")))
	assert.Equal(t, "unknown", KindUnknown.String())
}
