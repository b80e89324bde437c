//go:build !integration

package app

import (
	"net/http"
	"os"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestNewServer(t *testing.T) {
	server := NewServer(okHandler(), "8080")

	assert.NotNil(t, server)
	assert.NotNil(t, server.httpServer)
	assert.Equal(t, ":8080", server.httpServer.Addr)
	assert.Equal(t, 15*time.Second, server.httpServer.ReadTimeout)
	assert.Equal(t, 35*time.Second, server.httpServer.WriteTimeout)
	assert.Equal(t, 60*time.Second, server.httpServer.IdleTimeout)
	assert.Equal(t, 10*time.Second, server.shutdownTimeout)
	assert.Empty(t, server.onShutdown)
}

func TestNewServer_Options(t *testing.T) {
	tests := []struct {
		name         string
		opts         []ServerOption
		wantWrite    time.Duration
		wantHookSize int
	}{
		{
			name:      "custom write timeout",
			opts:      []ServerOption{WithWriteTimeout(45 * time.Second)},
			wantWrite: 45 * time.Second,
		},
		{
			name:      "zero write timeout keeps default",
			opts:      []ServerOption{WithWriteTimeout(0)},
			wantWrite: 35 * time.Second,
		},
		{
			name:         "nil hook is ignored",
			opts:         []ServerOption{WithShutdownHook(nil), WithShutdownHook(func() {})},
			wantWrite:    35 * time.Second,
			wantHookSize: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := NewServer(okHandler(), "8080", tt.opts...)

			assert.Equal(t, tt.wantWrite, server.httpServer.WriteTimeout)
			assert.Len(t, server.onShutdown, tt.wantHookSize)
		})
	}
}

func TestServer_Shutdown(t *testing.T) {
	var calls int32
	server := NewServer(okHandler(), "0", WithShutdownHook(func() {
		atomic.AddInt32(&calls, 1)
	}))

	require.NoError(t, server.Shutdown())
	require.NoError(t, server.Shutdown())

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "hooks run once")
}

func TestServer_Run_WithError(t *testing.T) {
	var called int32
	server := NewServer(okHandler(), "invalid-port", WithShutdownHook(func() {
		atomic.StoreInt32(&called, 1)
	}))

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Run()
	}()

	select {
	case err := <-errChan:
		assert.Error(t, err)
		assert.Equal(t, int32(1), atomic.LoadInt32(&called))
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return the listen error")
	}
}

func TestServer_Run_GracefulShutdown(t *testing.T) {
	var called int32
	server := NewServer(okHandler(), "0", WithShutdownHook(func() {
		atomic.StoreInt32(&called, 1)
	}))

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Run()
	}()

	time.Sleep(100 * time.Millisecond)

	proc, err := os.FindProcess(os.Getpid())
	require.NoError(t, err)
	require.NoError(t, proc.Signal(syscall.SIGTERM))

	select {
	case err := <-errChan:
		assert.NoError(t, err)
		assert.Equal(t, int32(1), atomic.LoadInt32(&called))
	case <-time.After(2 * time.Second):
		require.Fail(t, "Server did not shutdown gracefully")
	}
}
