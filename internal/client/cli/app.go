package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/jobtrackr/internal/client/api"
	"github.com/dmitrijs2005/jobtrackr/internal/client/config"
	"github.com/dmitrijs2005/jobtrackr/internal/client/services"
	"github.com/dmitrijs2005/jobtrackr/internal/client/session"
	"github.com/dmitrijs2005/jobtrackr/internal/client/storage"
	"github.com/dmitrijs2005/jobtrackr/internal/logging"
)

// App wires configuration, local storage, the API client, and the services
// behind the interactive REPL.
type App struct {
	config  *config.Config
	storage *storage.Storage
	store   *session.Store
	log     logging.Logger

	auth      services.AuthService
	apps      services.ApplicationService
	analytics services.AnalyticsService
	ai        services.AIToolsService
	docs      services.DocumentService
	companies services.CompanyService

	reader *bufio.Reader
}

// NewApp opens the local database, builds the API client with the session
// store as its credential source and 401 hook, and assembles the services.
func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	st, err := storage.Open(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	store := session.NewStore(st.DB, logger)

	apiClient := api.NewHTTPClient(c.APIBaseURL,
		api.WithTokenSource(store.Token),
		api.WithOnUnauthorized(store.ForceLogout),
		api.WithTimeout(c.RequestTimeout),
		api.WithLogger(logger),
	)

	return &App{
		config:    c,
		storage:   st,
		store:     store,
		log:       logger,
		auth:      services.NewAuthService(apiClient, store, st.Applications),
		apps:      services.NewApplicationService(apiClient, st.Applications),
		analytics: services.NewAnalyticsService(apiClient),
		ai:        services.NewAIToolsService(apiClient),
		docs:      services.NewDocumentService(apiClient),
		companies: services.NewCompanyService(apiClient),
		reader:    bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores the session and hands control to the REPL. It blocks until
// the user exits.
func (a *App) Run(ctx context.Context) {
	defer func() {
		_ = a.auth.Close(ctx)
		_ = a.storage.Close()
	}()

	a.store.OnForcedLogout(func() {
		printlnFn("Session expired, please login again")
	})

	if err := a.store.Restore(ctx); err != nil {
		a.log.Error(ctx, "session restore failed", "error", err)
	}

	printlnFn("Job Tracker CLI (type 'help' for commands)")
	if user := a.store.Current().User; user != nil {
		printlnFn("Welcome back,", user.Username)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.store, a.getStatus, scanner)
}

// getStatus renders the prompt fragment showing who is signed in.
func (a *App) getStatus() string {
	if user := a.store.Current().User; user != nil {
		return "(" + user.Username + ")"
	}
	return "(guest)"
}
