// dungeoncrawl-server serves the dungeon over SSH. Every connection gets its
// own freshly generated level. Build:
//
//	go build -o dungeoncrawl-server ./cmd/server
//
// Usage:
//
//	./dungeoncrawl-server [-config dungeoncrawl.yaml]
//
// Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
	"unicode"

	"dungeoncrawl/assets"
	"dungeoncrawl/internal/config"
	"dungeoncrawl/internal/game"
	"dungeoncrawl/internal/observability"
	internalssh "dungeoncrawl/internal/ssh"

	gossh "github.com/gliderlabs/ssh"
	"github.com/google/uuid"
	"go.uber.org/zap"
	xssh "golang.org/x/crypto/ssh"
)

const (
	defaultTerm   = "xterm-256color"
	maxNameBytes  = 16
	shutdownGrace = 10 * time.Second
)

// allowedTerms lists the terminal types a client may request. Anything else
// falls back to defaultTerm.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
	"alacritty":             true,
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	monsters, err := assets.LoadMonsters(cfg.Monsters.File)
	if err != nil {
		return fmt.Errorf("loading monsters: %w", err)
	}
	signer, err := loadOrCreateHostKey(cfg.Server.HostKey, logger)
	if err != nil {
		return err
	}

	s := &server{cfg: cfg, monsters: monsters, logger: logger}
	srv := &gossh.Server{
		Addr:        cfg.Server.Addr(),
		Handler:     s.handleSession,
		PtyCallback: func(gossh.Context, gossh.Pty) bool { return true },
		HostSigners: []gossh.Signer{signer},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("ssh server listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, gossh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("graceful shutdown failed, closing", zap.Error(err))
		return srv.Close()
	}
	return nil
}

type server struct {
	cfg      config.Config
	monsters []assets.MonsterTemplate
	logger   *zap.Logger
}

// handleSession runs one game for the lifetime of the connection.
func (s *server) handleSession(sess gossh.Session) {
	log := s.logger.With(
		zap.String("session", uuid.NewString()),
		zap.String("user", sanitizeName(sess.User())),
		zap.String("remote", sess.RemoteAddr().String()),
	)

	pty, winCh, ok := sess.Pty()
	if !ok {
		fmt.Fprintln(sess, "This game needs a terminal. Connect with: ssh -t <host>")
		_ = sess.Exit(1)
		return
	}

	term := sessionTerm(pty.Term, sess.Environ())
	screen, err := internalssh.NewScreen(internalssh.NewSessionTty(sess, pty.Window, winCh), term)
	if err != nil {
		log.Error("terminal setup failed", zap.String("term", term), zap.Error(err))
		fmt.Fprintln(sess, "Terminal setup failed.")
		_ = sess.Exit(1)
		return
	}
	if err := screen.Init(); err != nil {
		log.Error("screen init failed", zap.Error(err))
		_ = sess.Exit(1)
		return
	}

	g, err := game.New(game.Options{Config: s.cfg, Monsters: s.monsters, Logger: log})
	if err != nil {
		screen.Fini()
		log.Error("creating game", zap.Error(err))
		_ = sess.Exit(1)
		return
	}
	log.Info("session started", zap.String("term", term), zap.String("run", g.RunID()))

	err = g.Run(sess.Context(), screen)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Warn("game ended with error", zap.Error(err))
	}
	if err := g.SaveRunLog(); err != nil {
		log.Warn("saving run log", zap.Error(err))
	}
	log.Info("session ended", zap.Int("turns", g.Turn()), zap.Bool("defeated", g.PlayerDefeated()))
	_ = sess.Exit(0)
}

// sessionTerm picks the terminal type from the pty request, then the
// client's environment, and falls back to defaultTerm for anything not in
// allowedTerms.
func sessionTerm(ptyTerm string, environ []string) string {
	term := ptyTerm
	if term == "" {
		for _, env := range environ {
			if v, ok := strings.CutPrefix(env, "TERM="); ok {
				term = v
				break
			}
		}
	}
	if !allowedTerms[term] {
		return defaultTerm
	}
	return term
}

// sanitizeName strips control characters from a client-supplied name and
// caps it at maxNameBytes without splitting a rune.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsControl(r) {
			continue
		}
		if b.Len()+len(string(r)) > maxNameBytes {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// loadOrCreateHostKey reads a PEM private key from path. When the file is
// missing or unparsable a new ed25519 key is generated and written there.
func loadOrCreateHostKey(path string, logger *zap.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			logger.Info("loaded host key", zap.String("path", path))
			return signer, nil
		}
	}

	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generating host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("creating signer: %w", err)
	}
	block, err := xssh.MarshalPrivateKey(key, "dungeoncrawl server")
	if err != nil {
		return nil, fmt.Errorf("encoding host key: %w", err)
	}
	if err := os.WriteFile(path, pem.EncodeToMemory(block), 0o600); err != nil {
		logger.Warn("host key not persisted", zap.String("path", path), zap.Error(err))
	} else {
		logger.Info("generated host key", zap.String("path", path))
	}
	return signer, nil
}
