package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/anonsen/anonsen/internal/client/config"
	"github.com/anonsen/anonsen/internal/logging"
	"github.com/anonsen/anonsen/internal/models"
	"github.com/anonsen/anonsen/internal/repository/posts"
	"github.com/anonsen/anonsen/internal/repository/users"
	"github.com/anonsen/anonsen/internal/service"
	"github.com/anonsen/anonsen/internal/session"
	"github.com/anonsen/anonsen/internal/storage"
	"github.com/anonsen/anonsen/internal/timex"

	_ "modernc.org/sqlite"
)

// App is the interactive client. It holds the current identity explicitly
// instead of a global, and hands it to the services on each call.
type App struct {
	config      *config.Config
	auth        service.AuthService
	feed        service.FeedService
	currentUser *models.User
	reader      *bufio.Reader
	out         *os.File
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	db, err := storage.Open(ctx, c.DatabasePath)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	logger := logging.NewSlogLogger(slog.Default())
	clock := timex.NewRealClock()

	durable := storage.NewSQLiteBackend(db)
	ephemeral := storage.NewMemoryBackend()

	userRepo := users.NewRepository(durable, clock, logger)
	if err := userRepo.Init(ctx); err != nil {
		return nil, fmt.Errorf("error initializing users: %w", err)
	}

	postRepo := posts.NewRepository(durable, clock, logger)
	if err := postRepo.Init(ctx); err != nil {
		return nil, fmt.Errorf("error initializing posts: %w", err)
	}

	sessions := session.NewManager(durable, ephemeral, []byte(c.SessionSecret), c.SessionTTL, clock, logger)

	return &App{
		config: c,
		auth:   service.NewAuthService(userRepo, sessions),
		feed:   service.NewFeedService(postRepo),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.currentUser != nil
}

// Run restores a persisted session, then hands control to the REPL.
func (a *App) Run(ctx context.Context) {
	if user, err := a.auth.Restore(ctx); err == nil {
		a.currentUser = user
		log.Printf("Welcome back, %s!", user.Username)
	}

	a.Root(ctx)
}
