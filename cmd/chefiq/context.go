package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/hammamikhairi/chefiq/internal/catalog"
	"github.com/hammamikhairi/chefiq/internal/config"
	"github.com/hammamikhairi/chefiq/internal/domain"
	"github.com/hammamikhairi/chefiq/internal/drafts"
	"github.com/hammamikhairi/chefiq/internal/engagement"
	"github.com/hammamikhairi/chefiq/internal/kvstore"
	"github.com/hammamikhairi/chefiq/internal/logger"
	"github.com/hammamikhairi/chefiq/internal/profile"
	"github.com/hammamikhairi/chefiq/internal/publish"
	"github.com/hammamikhairi/chefiq/internal/reviews"
	"github.com/hammamikhairi/chefiq/internal/session"
	"github.com/hammamikhairi/chefiq/internal/userrecipes"
)

// appContext lazily wires the stores behind the CLI commands. All
// commands share one key-value backend resolved from configuration.
type appContext struct {
	configFlag  *string
	verboseFlag *bool
	quietFlag   *bool

	once    sync.Once
	initErr error

	cfg     *config.Config
	log     *logger.Logger
	logFile *os.File
	kv      domain.KV
	closeKV func() error

	catalog   *catalog.Catalog
	drafts    *drafts.Store
	reviews   *reviews.Store
	sets      *engagement.Sets
	profile   *profile.Store
	recipes   *userrecipes.Store
	tracker   *session.Tracker
	publisher *publish.Publisher
}

func newAppContext(configFlag *string, verboseFlag, quietFlag *bool) *appContext {
	return &appContext{configFlag: configFlag, verboseFlag: verboseFlag, quietFlag: quietFlag}
}

func (a *appContext) init() error {
	a.once.Do(func() { a.initErr = a.build() })
	return a.initErr
}

func (a *appContext) build() error {
	cfg, err := config.Load(*a.configFlag)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := logger.LevelNormal
	switch cfg.Logging.Level {
	case "off":
		level = logger.LevelOff
	case "verbose":
		level = logger.LevelVerbose
	}
	if a.verboseFlag != nil && *a.verboseFlag {
		level = logger.LevelVerbose
	}
	if a.quietFlag != nil && *a.quietFlag {
		level = logger.LevelOff
	}

	// Logs go to a file when configured so command output stays clean.
	var out io.Writer = os.Stderr
	if cfg.Logging.File != "" {
		if dir := filepath.Dir(cfg.Logging.File); dir != "" && dir != "." {
			os.MkdirAll(dir, 0o755)
		}
		f, ferr := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if ferr != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n",
				cfg.Logging.File, ferr)
		} else {
			out = f
			a.logFile = f
		}
	}
	a.log = logger.New(level, out)

	switch cfg.Storage.Backend {
	case "memory":
		a.kv = kvstore.NewMemory(a.log)
		a.closeKV = func() error { return nil }
	default:
		db, derr := kvstore.OpenSQLite(cfg.Storage.Path, a.log)
		if derr != nil {
			return fmt.Errorf("open storage: %w", derr)
		}
		a.kv = db
		a.closeKV = db.Close
	}

	a.catalog = catalog.New(a.log)
	a.drafts = drafts.NewStore(a.kv, a.log)
	a.reviews = reviews.NewStore(a.kv, a.log)
	a.sets = engagement.NewSets(a.kv, a.log)
	a.profile = profile.NewStore(a.kv, a.log)
	a.recipes = userrecipes.NewStore(a.kv, a.log)
	a.tracker = session.NewTracker(a.kv, a.catalog, a.sets, a.log)
	a.publisher = publish.New(a.recipes, a.profile, a.log,
		publish.WithEndpoint(cfg.Publish.Endpoint),
		publish.WithHTTPTimeout(time.Duration(cfg.Publish.TimeoutSeconds)*time.Second))
	return nil
}

func (a *appContext) close() {
	if a.closeKV != nil {
		if err := a.closeKV(); err != nil {
			a.log.Warn("closing storage: %v", err)
		}
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}

// resolveRecipe looks the id up in the catalog first, then in the
// published user recipes.
func (a *appContext) resolveRecipe(ctx context.Context, id string) (*domain.Recipe, error) {
	if r, ok := a.catalog.Resolve(id); ok {
		return r, nil
	}
	ur, err := a.recipes.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	r := ur.Recipe
	return &r, nil
}
