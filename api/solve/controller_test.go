package solveapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/api"
	"github.com/katalvlaran/mazepath/api/i"
	solveapi "github.com/katalvlaran/mazepath/api/solve"
	"github.com/katalvlaran/mazepath/config"
	"github.com/katalvlaran/mazepath/maze"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newServer(t *testing.T) (http.Handler, *logtest.Hook) {
	t.Helper()
	logger, hook := logtest.NewNullLogger()
	settings := solveapi.SettingsFromConfig(config.Default())
	settings.MaxDimension = 61
	router := api.NewRouter(api.Config{
		Addr:        ":0",
		Controllers: []i.Controller{solveapi.NewController(settings, logger)},
		Logger:      logger,
	})
	return router.Handler(), hook
}

func post(t *testing.T, h http.Handler, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(http.MethodPost, "/v1/solve", &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) solveapi.SolveResponse {
	t.Helper()
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp solveapi.SolveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestAlgorithmsEndpoint(t *testing.T) {
	h, _ := newServer(t)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/algorithms", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp solveapi.AlgorithmsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Algorithms, 7)
	assert.Contains(t, resp.Algorithms, "greedyBestFirst")
	assert.Equal(t, "bfs", resp.Default)
}

func TestSolve_ExplicitSize(t *testing.T) {
	h, hook := newServer(t)
	resp := decode(t, post(t, h, map[string]any{
		"width": 21, "height": 15, "seed": 3, "algorithm": "dijkstra",
	}))

	_, err := uuid.Parse(resp.RunID)
	assert.NoError(t, err)
	assert.Equal(t, "dijkstra", resp.Algorithm)
	assert.Equal(t, int64(3), resp.Seed)
	assert.Equal(t, 21, resp.Width)
	assert.Equal(t, 15, resp.Height)
	require.Len(t, resp.Maze, 15)
	assert.Len(t, resp.Maze[0], 21)

	require.True(t, resp.Found)
	require.NotEmpty(t, resp.Path)
	assert.Equal(t, maze.Cell{X: 1, Y: 1}, resp.Path[0])
	assert.Equal(t, resp.End, resp.Path[len(resp.Path)-1])
	assert.Equal(t, len(resp.Path)-1, resp.Length)
	for k := 1; k < len(resp.Path); k++ {
		assert.True(t, resp.Path[k-1].IsAdjacent(resp.Path[k]))
	}

	// the rendered rows parse back and carry the endpoints
	m, err := maze.FromRows(resp.Maze)
	require.NoError(t, err)
	start, ok := m.Start()
	require.True(t, ok)
	assert.Equal(t, resp.Start, start)

	last := hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, "request served", last.Message)
	assert.Equal(t, http.StatusOK, last.Data["status"])
}

func TestSolve_SameSeedSameMaze(t *testing.T) {
	h, _ := newServer(t)
	body := map[string]any{"complexity": "easy", "seed": 99}
	a := decode(t, post(t, h, body))
	b := decode(t, post(t, h, body))
	assert.Equal(t, a.Maze, b.Maze)
	assert.Equal(t, a.Path, b.Path)
	assert.NotEqual(t, a.RunID, b.RunID)
	assert.Equal(t, 15, a.Width)
	assert.Equal(t, "bfs", a.Algorithm, "default algorithm")
}

func TestSolve_DefaultsAndUnseeded(t *testing.T) {
	h, _ := newServer(t)
	resp := decode(t, post(t, h, map[string]any{}))
	assert.Equal(t, 25, resp.Width, "medium tier")
	assert.NotZero(t, resp.Seed, "the chosen seed is reported")
	assert.True(t, resp.Found)
}

func TestSolve_DepthLimitedNoPath(t *testing.T) {
	h, _ := newServer(t)
	resp := decode(t, post(t, h, map[string]any{
		"width": 15, "height": 15, "seed": 1, "algorithm": "depthLimited", "depth_limit": 0,
	}))
	assert.False(t, resp.Found)
	assert.NotNil(t, resp.Path)
	assert.Empty(t, resp.Path)
	assert.Zero(t, resp.Length)
}

func TestSolve_DFSIgnoresConfiguredBound(t *testing.T) {
	h, _ := newServer(t)
	resp := decode(t, post(t, h, map[string]any{"width": 25, "height": 25, "seed": 4, "algorithm": "dfs"}))
	assert.True(t, resp.Found, "the configured depth bound belongs to depthLimited")
	assert.Greater(t, resp.Length, 10)
}

func TestSolve_ExplicitEndpoints(t *testing.T) {
	h, _ := newServer(t)
	resp := decode(t, post(t, h, map[string]any{
		"width": 9, "height": 9, "seed": 5, "extra_path_probability": 0,
		"start": map[string]int{"x": 1, "y": 1}, "end": map[string]int{"x": 7, "y": 7},
		"algorithm": "bidirectional",
	}))
	assert.True(t, resp.Found)
	assert.Equal(t, maze.Cell{X: 7, Y: 7}, resp.End)
}

func TestSolve_BadRequests(t *testing.T) {
	h, _ := newServer(t)
	cases := map[string]any{
		"UnknownAlgorithm": map[string]any{"width": 9, "height": 9, "algorithm": "astar"},
		"TooSmall":         map[string]any{"width": 2, "height": 9},
		"TooLarge":         map[string]any{"width": 301, "height": 9},
		"WidthOnly":        map[string]any{"width": 9},
		"BadComplexity":    map[string]any{"complexity": "nightmare"},
		"StartOnWall":      map[string]any{"width": 9, "height": 9, "start": map[string]int{"x": 0, "y": 0}},
		"NegativeDepth":    map[string]any{"width": 9, "height": 9, "depth_limit": -1},
		"Probability":      map[string]any{"width": 9, "height": 9, "extra_path_probability": 1.5},
		"MalformedJSON":    `{"width": `,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec := post(t, h, body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			var payload map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
			assert.NotEmpty(t, payload["error"])
		})
	}
}

func TestSolve_UnknownAlgorithmMessage(t *testing.T) {
	h, _ := newServer(t)
	rec := post(t, h, map[string]any{"width": 9, "height": 9, "algorithm": "astar"})
	assert.Contains(t, rec.Body.String(), "unknown algorithm")
}

func TestNewController_NilLogger(t *testing.T) {
	assert.Panics(t, func() { solveapi.NewController(solveapi.Settings{}, nil) })
}

func TestRouter_DefaultLogger(t *testing.T) {
	router := api.NewRouter(api.Config{
		Controllers: []i.Controller{solveapi.NewController(solveapi.Settings{}, logrus.New())},
	})
	rec := httptest.NewRecorder()
	router.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/algorithms", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
