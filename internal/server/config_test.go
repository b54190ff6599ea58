package server_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ipscope/ipscope/internal/server"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := server.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 15*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.WriteTimeout)
	assert.Equal(t, 60*time.Second, cfg.IdleTimeout)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 1<<20, cfg.MaxHeaderBytes)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.True(t, cfg.DNSEnabled)
	assert.Equal(t, 3*time.Second, cfg.DNSTimeout)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("IPSCOPE_ADDR", "127.0.0.1:9090")
	t.Setenv("IPSCOPE_READ_TIMEOUT", "5s")
	t.Setenv("IPSCOPE_LOG_FORMAT", "json")
	t.Setenv("IPSCOPE_DNS_ENABLED", "false")

	cfg, err := server.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Addr)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.False(t, cfg.DNSEnabled)
}

func TestLoadConfig_BadDuration(t *testing.T) {
	t.Setenv("IPSCOPE_READ_TIMEOUT", "not-a-duration")

	_, err := server.LoadConfig()
	assert.Error(t, err)
}

func TestServerRun_GracefulShutdown(t *testing.T) {
	cfg := server.Config{
		Addr:            "127.0.0.1:0",
		ReadTimeout:     time.Second,
		WriteTimeout:    time.Second,
		IdleTimeout:     time.Second,
		ShutdownTimeout: 2 * time.Second,
		MaxHeaderBytes:  1 << 20,
	}

	srv := server.NewServer(cfg, nil)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
	}()

	// Give the listener a moment to come up, then trigger shutdown.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServerRun_ListenFailure(t *testing.T) {
	cfg := server.Config{Addr: "256.256.256.256:99999"}
	srv := server.NewServer(cfg, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err := srv.Run(ctx, http.NotFoundHandler())
	assert.Error(t, err)
}
