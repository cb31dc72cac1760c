package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keydex/keydex/btree"
)

func newTestServer(maxKeys int) *Server {
	return NewServer(btree.New(maxKeys, btree.WithSeed(1)), ":0")
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestInsertAssignsSequentialKeys(t *testing.T) {
	s := newTestServer(3)

	for i, value := range []int{10, 20, 30} {
		rec := doJSON(t, s, http.MethodPost, "/api/values", map[string]int{"value": value})
		require.Equal(t, http.StatusCreated, rec.Code)

		var got pairResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, i+1, got.Key)
		assert.Equal(t, value, got.Value)
	}
}

func TestInsertRejectsBadBody(t *testing.T) {
	s := newTestServer(3)
	req := httptest.NewRequest(http.MethodPost, "/api/values", bytes.NewBufferString("not json"))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRandomInsertStaysInContract(t *testing.T) {
	s := newTestServer(3)
	rec := doJSON(t, s, http.MethodPost, "/api/values/random", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var got pairResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, 1, got.Key)
	assert.GreaterOrEqual(t, got.Value, 1)
	assert.LessOrEqual(t, got.Value, 100)
}

func TestSearchFoundAndMissing(t *testing.T) {
	s := newTestServer(3)
	doJSON(t, s, http.MethodPost, "/api/values", map[string]int{"value": 42})

	rec := doJSON(t, s, http.MethodGet, "/api/keys/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got pairResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, 42, got.Value)

	rec = doJSON(t, s, http.MethodGet, "/api/keys/99", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/api/keys/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRangeScan(t *testing.T) {
	s := newTestServer(2)
	for _, v := range []int{10, 20, 30, 40, 50} {
		doJSON(t, s, http.MethodPost, "/api/values", map[string]int{"value": v})
	}

	rec := doJSON(t, s, http.MethodGet, "/api/range?start=2&end=4", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got []pairResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 3)
	assert.Equal(t, pairResponse{Key: 2, Value: 20}, got[0])
	assert.Equal(t, pairResponse{Key: 4, Value: 40}, got[2])
}

func TestRangeRejectsMissingBounds(t *testing.T) {
	s := newTestServer(3)
	rec := doJSON(t, s, http.MethodGet, "/api/range?start=1", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRemoveIsIdempotent(t *testing.T) {
	s := newTestServer(3)
	doJSON(t, s, http.MethodPost, "/api/values", map[string]int{"value": 10})

	rec := doJSON(t, s, http.MethodDelete, "/api/keys/1", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// deleting again is still a 204, absent keys are a no-op
	rec = doJSON(t, s, http.MethodDelete, "/api/keys/1", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/api/keys/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResetRestartsKeyCounter(t *testing.T) {
	s := newTestServer(3)
	doJSON(t, s, http.MethodPost, "/api/values", map[string]int{"value": 10})
	doJSON(t, s, http.MethodPost, "/api/values", map[string]int{"value": 20})

	rec := doJSON(t, s, http.MethodPost, "/api/reset", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, s, http.MethodPost, "/api/values", map[string]int{"value": 30})
	var got pairResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, 1, got.Key)
}

func TestTreeDumpShowsLevels(t *testing.T) {
	s := newTestServer(3)
	for _, v := range []int{10, 20, 30, 40} {
		doJSON(t, s, http.MethodPost, "/api/values", map[string]int{"value": v})
	}

	rec := doJSON(t, s, http.MethodGet, "/api/tree", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Height int              `json:"height"`
		Keys   int              `json:"keys"`
		Levels [][]nodeResponse `json:"levels"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))

	assert.Equal(t, 2, got.Height)
	assert.Equal(t, 4, got.Keys)
	require.Len(t, got.Levels, 2)

	root := got.Levels[0][0]
	assert.False(t, root.Leaf)
	assert.Equal(t, []int{3}, root.Keys)
	assert.Empty(t, root.Values)

	require.Len(t, got.Levels[1], 2)
	assert.Equal(t, []int{1, 2}, got.Levels[1][0].Keys)
	assert.Equal(t, []int{10, 20}, got.Levels[1][0].Values)
	assert.Equal(t, []int{3, 4}, got.Levels[1][1].Keys)
	assert.Equal(t, []int{30, 40}, got.Levels[1][1].Values)
}

func TestRequestIDHeaderIsEchoed(t *testing.T) {
	s := newTestServer(3)

	req := httptest.NewRequest(http.MethodGet, "/api/tree", nil)
	req.Header.Set("X-Request-Id", "fixed-id")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, "fixed-id", rec.Header().Get("X-Request-Id"))

	rec = doJSON(t, s, http.MethodGet, "/api/tree", nil)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}
