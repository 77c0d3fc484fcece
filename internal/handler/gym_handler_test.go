package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gympoint/api/internal/domain"
	"github.com/gympoint/api/internal/dto"
)

// mockGymService implements service.GymService with pluggable behavior
type mockGymService struct {
	createFunc func(ctx context.Context, req *dto.CreateGymRequest) (*domain.Gym, error)
	getFunc    func(ctx context.Context, id string) (*domain.Gym, error)
	searchFunc func(ctx context.Context, query string, page int) ([]*domain.Gym, error)
	nearbyFunc func(ctx context.Context, from domain.Coordinate) ([]*domain.Gym, error)
}

func (m *mockGymService) Create(ctx context.Context, req *dto.CreateGymRequest) (*domain.Gym, error) {
	return m.createFunc(ctx, req)
}

func (m *mockGymService) Get(ctx context.Context, id string) (*domain.Gym, error) {
	return m.getFunc(ctx, id)
}

func (m *mockGymService) Search(ctx context.Context, query string, page int) ([]*domain.Gym, error) {
	return m.searchFunc(ctx, query, page)
}

func (m *mockGymService) Nearby(ctx context.Context, from domain.Coordinate) ([]*domain.Gym, error) {
	return m.nearbyFunc(ctx, from)
}

func testGym() *domain.Gym {
	return &domain.Gym{
		ID:        testGymID,
		Title:     "Iron Temple",
		Latitude:  -27.2092052,
		Longitude: -49.6401091,
		CreatedAt: time.Now(),
	}
}

func TestGymHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := &mockGymService{
			createFunc: func(ctx context.Context, req *dto.CreateGymRequest) (*domain.Gym, error) {
				gym := testGym()
				gym.Title = req.Title
				return gym, nil
			},
		}
		h := NewGymHandler(svc)

		w := performJSON(h.Create, http.MethodPost, "/api/v1/gyms",
			`{"title":"Iron Temple","latitude":-27.2092052,"longitude":-49.6401091}`)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Iron Temple")
	})

	t.Run("out-of-range coordinates", func(t *testing.T) {
		h := NewGymHandler(&mockGymService{})

		w := performJSON(h.Create, http.MethodPost, "/api/v1/gyms",
			`{"title":"Iron Temple","latitude":95,"longitude":-200}`)

		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp struct {
			Error struct {
				Fields []map[string]string `json:"fields"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Error.Fields, 2)
	})
}

func TestGymHandler_Search(t *testing.T) {
	var gotQuery string
	var gotPage int
	svc := &mockGymService{
		searchFunc: func(ctx context.Context, query string, page int) ([]*domain.Gym, error) {
			gotQuery = query
			gotPage = page
			return []*domain.Gym{testGym()}, nil
		},
	}
	h := NewGymHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/gyms/search?q=iron&page=2", nil)

	h.Search(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "iron", gotQuery)
	assert.Equal(t, 2, gotPage)
	assert.Contains(t, w.Body.String(), "Iron Temple")
}

func TestGymHandler_Nearby(t *testing.T) {
	t.Run("passes the caller position through", func(t *testing.T) {
		var got domain.Coordinate
		svc := &mockGymService{
			nearbyFunc: func(ctx context.Context, from domain.Coordinate) ([]*domain.Gym, error) {
				got = from
				return []*domain.Gym{testGym()}, nil
			},
		}
		h := NewGymHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet,
			"/api/v1/gyms/nearby?latitude=-27.2092052&longitude=-49.6401091", nil)

		h.Nearby(c)

		require.Equal(t, http.StatusOK, w.Code)
		assert.InDelta(t, -27.2092052, got.Latitude, 1e-9)
		assert.InDelta(t, -49.6401091, got.Longitude, 1e-9)
	})

	t.Run("rejects out-of-range position", func(t *testing.T) {
		h := NewGymHandler(&mockGymService{})

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet,
			"/api/v1/gyms/nearby?latitude=120&longitude=0", nil)

		h.Nearby(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHealthHandler_Health(t *testing.T) {
	h := NewHealthHandler(nil, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	h.Health(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
