package e2e_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/blockgame-go/internal/api"
	"github.com/mcoot/blockgame-go/internal/factory"
	"github.com/mcoot/blockgame-go/internal/model"
	redisstorage "github.com/mcoot/blockgame-go/internal/storage/redis"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	projectRoot := findProjectRoot(t)

	binaryPath := filepath.Join(t.TempDir(), "blockgame-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/blockgame")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer runs the leaderboard API on a real port backed by miniredis
type testServer struct {
	app      *factory.App
	url      string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	mr := miniredis.RunT(t)
	redisCfg := redisstorage.DefaultConfig()
	redisCfg.URL = "redis://" + mr.Addr()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	app, err := factory.New(factory.Config{
		Logger:      logger,
		StorageType: factory.StorageTypeRedis,
		RedisConfig: &redisCfg,
		Seed:        1,
	})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:      logger,
		Leaderboard: app.LeaderboardService,
		Clock:       app.Clock,
	})

	serverCfg := api.DefaultServerConfig()
	serverCfg.Host = "127.0.0.1"
	serverCfg.Port = port
	server := api.NewServer(router, serverCfg, logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := server.Run(ctx); err != nil {
			t.Logf("server error: %v", err)
		}
	}()

	serverURL := "http://" + serverCfg.Host + ":" + strconv.Itoa(port)
	waitForServer(t, serverURL+"/api/v1/health")

	return &testServer{
		app: app,
		url: serverURL,
		shutdown: func() {
			cancel()
			<-done
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// Response types for JSON parsing
type healthResponse struct {
	Status string `json:"status"`
}

type scoreResponse struct {
	ID           string `json:"id"`
	Player       string `json:"player"`
	Mode         string `json:"mode"`
	Score        int    `json:"score"`
	Level        int    `json:"level"`
	LinesCleared int    `json:"lines_cleared"`
	DurationMs   int64  `json:"duration_ms"`
}

type scoreListResponse struct {
	Mode   string          `json:"mode"`
	Scores []scoreResponse `json:"scores"`
}

func recordScore(t *testing.T, ts *testServer, player string, mode model.GameMode, score int) string {
	t.Helper()

	end := time.Now()
	rec, err := ts.app.LeaderboardService.Record(context.Background(), player, model.GameSummary{
		Mode:         mode,
		Score:        score,
		Level:        1 + score/1000,
		LinesCleared: score / 100,
		StartedAt:    end.Add(-time.Minute),
		EndedAt:      end,
	})
	require.NoError(t, err)
	return string(rec.ID)
}

func TestCLI(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.url)

	t.Run("health", func(t *testing.T) {
		out, err := cli.run("health")
		require.NoError(t, err, out)

		var resp healthResponse
		require.NoError(t, json.Unmarshal([]byte(out), &resp))
		assert.Equal(t, "ok", resp.Status)
	})

	t.Run("empty table", func(t *testing.T) {
		out, err := cli.run("scores", "--mode", "timed")
		require.NoError(t, err, out)

		var resp scoreListResponse
		require.NoError(t, json.Unmarshal([]byte(out), &resp))
		assert.Equal(t, "timed", resp.Mode)
		assert.Empty(t, resp.Scores)
	})

	low := recordScore(t, ts, "ada", model.ModeClassic, 400)
	high := recordScore(t, ts, "bob", model.ModeClassic, 2600)
	recordScore(t, ts, "cy", model.ModeTimed, 9000)

	t.Run("ranked table", func(t *testing.T) {
		out, err := cli.run("scores")
		require.NoError(t, err, out)

		var resp scoreListResponse
		require.NoError(t, json.Unmarshal([]byte(out), &resp))
		require.Len(t, resp.Scores, 2)
		assert.Equal(t, high, resp.Scores[0].ID)
		assert.Equal(t, low, resp.Scores[1].ID)
	})

	t.Run("limit", func(t *testing.T) {
		out, err := cli.run("scores", "--limit", "1")
		require.NoError(t, err, out)

		var resp scoreListResponse
		require.NoError(t, json.Unmarshal([]byte(out), &resp))
		require.Len(t, resp.Scores, 1)
		assert.Equal(t, "bob", resp.Scores[0].Player)
	})

	t.Run("get", func(t *testing.T) {
		out, err := cli.run("scores", "get", high)
		require.NoError(t, err, out)

		var resp scoreResponse
		require.NoError(t, json.Unmarshal([]byte(out), &resp))
		assert.Equal(t, "bob", resp.Player)
		assert.Equal(t, 2600, resp.Score)
		assert.Equal(t, 3, resp.Level)
		assert.Equal(t, int64(60000), resp.DurationMs)
	})

	t.Run("get missing", func(t *testing.T) {
		out, err := cli.run("scores", "get", "doesnotexist")
		require.Error(t, err)
		assert.True(t, strings.Contains(out, "SCORE_NOT_FOUND"), out)
	})

	t.Run("bad mode", func(t *testing.T) {
		out, err := cli.run("scores", "--mode", "marathon")
		require.Error(t, err)
		assert.Contains(t, out, "invalid game mode")
	})
}
