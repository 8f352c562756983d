package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/hvtran/shopfront/internal/client/api"
	"github.com/hvtran/shopfront/internal/client/cart"
	"github.com/hvtran/shopfront/internal/client/config"
	"github.com/hvtran/shopfront/internal/client/localdb"
	"github.com/hvtran/shopfront/internal/client/models"
	"github.com/hvtran/shopfront/internal/client/repositories/kv"
	"github.com/hvtran/shopfront/internal/client/services"
	"github.com/hvtran/shopfront/internal/client/session"
	"github.com/hvtran/shopfront/internal/logging"
)

// App owns the wired-up client: services, cart store, session manager and
// the interactive reader.
type App struct {
	config  *config.Config
	log     logging.Logger
	db      *sql.DB
	auth    services.AuthService
	catalog services.CatalogService
	orders  services.OrderService
	admin   services.AdminService
	cart    *cart.Store
	session *session.Manager
	reader  *bufio.Reader
	user    *models.User
}

// NewApp builds the application graph: local database (with migrations),
// API client, services, cart store and session manager. The cart store is
// subscribed to identity transitions here; nothing else calls its resync.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	if log == nil {
		log = logging.Nop()
	}

	db, err := localdb.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	apiClient := api.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout, log)

	cartStore := cart.NewStore(kv.NewSQLiteRepository(db), log)

	sessions := session.NewManager()
	sessions.Subscribe(func(ctx context.Context, id session.Identity) {
		cartStore.SyncWithIdentity(ctx, id)
	})

	a := &App{
		config:  cfg,
		log:     log,
		db:      db,
		auth:    services.NewAuthService(apiClient, db, log),
		catalog: services.NewCatalogService(apiClient, cfg.PageSize),
		orders:  services.NewOrderService(apiClient, cfg.PageSize),
		admin:   services.NewAdminService(apiClient, cfg.PageSize),
		cart:    cartStore,
		session: sessions,
		reader:  bufio.NewReader(os.Stdin),
	}
	return a, nil
}

// Run restores a persisted session, announces the resulting identity (which
// loads the matching cart slot), and hands control to the REPL. It blocks
// until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	user, err := a.auth.Restore(ctx)
	if err != nil {
		a.log.Warn(ctx, "session restore failed, continuing as guest", "error", err)
	}
	if user != nil {
		a.user = user
		a.session.Set(ctx, session.User(user.ID))
		printlnFn(fmt.Sprintf("Welcome back, %s!", user.Username))
	} else {
		a.session.Announce(ctx)
	}

	printlnFn("Shopfront CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

// identity is the slot selector for all cart operations.
func (a *App) identity() session.Identity {
	return a.session.Current()
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

func (a *App) isAdmin() bool {
	return a.user.IsAdmin()
}

func (a *App) getStatus() string {
	if a.user == nil {
		return ""
	}
	s := a.user.Username
	if a.user.IsAdmin() {
		s += ", admin"
	}
	return fmt.Sprintf("(%s)", s)
}
