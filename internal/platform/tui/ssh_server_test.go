package tui

import (
	"io"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestListenAndServeReturnsBindError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen() error = %v", err)
	}
	defer ln.Close()

	server, err := NewSSHServer(SSHServerConfig{
		Address:     ln.Addr().String(),
		HostKeyPath: filepath.Join(t.TempDir(), "host_key"),
		IdleTimeout: time.Minute,
		Game:        core.DefaultConfig(),
		Logger:      log.New(io.Discard),
	})
	if err != nil {
		t.Fatalf("NewSSHServer() error = %v", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err == nil {
			t.Error("ListenAndServe() on a taken address returned nil, expected an error")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("ListenAndServe() did not return for a taken address")
	}
}

func TestConnectionConfigSeeds(t *testing.T) {
	game := core.DefaultConfig()
	game.Seed = 42
	s := &SSHServer{config: SSHServerConfig{Game: game}}

	first := s.connectionConfig(100, 40)
	second := s.connectionConfig(90, 30)

	if first.Seed != 42 {
		t.Errorf("first connection Seed = %d, expected 42", first.Seed)
	}
	if second.Seed == first.Seed {
		t.Errorf("connections share seed %d, expected distinct seeds", first.Seed)
	}
	if second.Seed != 42+connectionSeedStride {
		t.Errorf("second connection Seed = %d, expected %d", second.Seed, int64(42+connectionSeedStride))
	}
	if first.ScreenW != 100 || first.ScreenH != 40 {
		t.Errorf("screen = %dx%d, expected 100x40", first.ScreenW, first.ScreenH)
	}
	if first.Cols != game.Cols || first.Rows != game.Rows {
		t.Errorf("board = %dx%d, expected %dx%d", first.Cols, first.Rows, game.Cols, game.Rows)
	}
}

func TestConnectionConfigTimeSeed(t *testing.T) {
	s := &SSHServer{config: SSHServerConfig{Game: core.DefaultConfig()}}

	cfg := s.connectionConfig(80, 24)

	if cfg.Seed == 0 {
		t.Error("unset seed should be replaced with a time based one")
	}
}
