package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-restviews/internal/config"
	"github.com/MKhiriev/go-restviews/internal/handler"
	myHTTP "github.com/MKhiriev/go-restviews/internal/handler/http"
	"github.com/MKhiriev/go-restviews/internal/logger"
	"github.com/MKhiriev/go-restviews/internal/mock"
)

func freeAddress(t *testing.T) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(nil, config.Server{HTTPAddress: ":8080"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":8080"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_NoAddress(t *testing.T) {
	h := &handler.Handlers{HTTP: myHTTP.NewHandler(nil, mock.NewMockRenderer(gomock.NewController(t)), config.Server{}, logger.Nop())}

	_, err := NewServer(h, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_AppliesTimeouts(t *testing.T) {
	h := &handler.Handlers{HTTP: myHTTP.NewHandler(nil, mock.NewMockRenderer(gomock.NewController(t)), config.Server{}, logger.Nop())}
	cfg := config.Server{
		HTTPAddress:     "127.0.0.1:0",
		RequestTimeout:  5 * time.Second,
		ShutdownTimeout: 2 * time.Second,
	}

	srv, err := NewServer(h, cfg, logger.Nop())
	require.NoError(t, err)

	s := srv.(*server)
	assert.Equal(t, "127.0.0.1:0", s.httpServer.server.Addr)
	assert.Equal(t, 5*time.Second, s.httpServer.server.ReadTimeout)
	assert.Equal(t, 5*time.Second, s.httpServer.server.WriteTimeout)
	assert.Equal(t, 2*time.Second, s.httpServer.shutdownTimeout)
}

func TestRun_NoServers(t *testing.T) {
	s := &server{logger: logger.Nop()}
	assert.ErrorIs(t, s.run(context.Background()), errNoServersToRun)
}

func TestRun_ServesUntilCancelled(t *testing.T) {
	addr := freeAddress(t)
	handlerFunc := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	s := &server{
		httpServer: newHTTPServer(handlerFunc, config.Server{HTTPAddress: addr, ShutdownTimeout: time.Second}, logger.Nop()),
		logger:     logger.Nop(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRun_ListenError(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	s := &server{
		httpServer: newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: l.Addr().String()}, logger.Nop()),
		logger:     logger.Nop(),
	}

	assert.Error(t, s.run(context.Background()))
}

func TestRunServer_BusyPort(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	h := &handler.Handlers{HTTP: myHTTP.NewHandler(nil, mock.NewMockRenderer(gomock.NewController(t)), config.Server{}, logger.Nop())}
	srv, err := NewServer(h, config.Server{HTTPAddress: l.Addr().String()}, logger.Nop())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- srv.RunServer() }()

	select {
	case err := <-done:
		assert.ErrorContains(t, err, "ListenAndServe")
	case <-time.After(3 * time.Second):
		t.Fatal("server kept running on a busy port")
	}
}
