package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/Haseebfayyaz/authgate/internal/client/api"
	"github.com/Haseebfayyaz/authgate/internal/client/config"
	"github.com/Haseebfayyaz/authgate/internal/client/session"
	"github.com/Haseebfayyaz/authgate/internal/client/storage"
	"github.com/Haseebfayyaz/authgate/internal/client/store"
	"github.com/Haseebfayyaz/authgate/internal/logging"
)

type App struct {
	config *config.Config
	client api.Client
	store  *store.Store
	repos  *storage.Repositories
	log    logging.Logger
	reader *bufio.Reader
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	repos, err := storage.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	apiClient := api.NewHTTPClient(cfg.ServerBaseURL, repos.Credentials, cfg.RequestTimeout)

	st, err := store.New(ctx, repos.Credentials)
	if err != nil {
		_ = repos.Close()
		return nil, err
	}

	return &App{
		config: cfg,
		client: apiClient,
		store:  st,
		repos:  repos,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

// Run starts the session reconciler and enters the REPL. It returns when
// the user exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	defer func() {
		_ = a.client.Close()
		_ = a.repos.Close()
	}()

	rec := session.New(a.store, a.repos.Credentials, a.client, a.log)
	stop := rec.Start(ctx)
	defer stop()

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.store.Snapshot().IsAuthenticated
}

func (a *App) getStatus() string {
	st := a.store.Snapshot()
	switch {
	case st.User != nil:
		return fmt.Sprintf("(%s)", st.User.Email)
	case st.IsAuthenticated:
		return "(…)"
	default:
		return ""
	}
}
