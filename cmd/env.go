package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/impa-jovem/impa/internal/account"
	"github.com/impa-jovem/impa/internal/assessment"
	"github.com/impa-jovem/impa/internal/config"
	"github.com/impa-jovem/impa/internal/dashboard"
	"github.com/impa-jovem/impa/internal/inbox"
	"github.com/impa-jovem/impa/internal/journal"
	"github.com/impa-jovem/impa/internal/llm"
	"github.com/impa-jovem/impa/internal/logging"
	"github.com/impa-jovem/impa/internal/progress"
	"github.com/impa-jovem/impa/internal/store"
)

// env is everything a command needs, opened once per invocation.
type env struct {
	cfg *config.Config
	log *logging.Logger
	db  *store.Store

	accounts   *account.Service
	progress   *progress.Store
	journal    *journal.Store
	inbox      *inbox.Store
	results    *assessment.ResultStore
	assessment *assessment.Service
	dashboard  *dashboard.Dashboard

	// ctx carries the persisted session, if any.
	ctx context.Context
}

// openEnv loads configuration, opens the database and restores the
// session into the returned context.
func openEnv(cmd *cobra.Command) (*env, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	log, err := logging.New(cfg.Log.Mode, cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	db, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	e := &env{cfg: cfg, log: log, db: db}
	e.accounts = account.NewService(db, account.NewBcryptHasher(cfg.Auth.BcryptCost), account.Options{
		MentorAccessCode:  cfg.Auth.MentorAccessCode,
		MinPasswordLength: cfg.Auth.MinPasswordLength,
	}, log)
	e.progress = progress.NewStore(db, log)
	e.journal = journal.NewStore(db, log)
	e.inbox = inbox.NewStore(db, log)
	e.results = assessment.NewResultStore(db)
	e.dashboard = dashboard.New(e.accounts, e.progress, e.journal, e.results)

	var gen assessment.Generator
	provider, err := llm.NewProvider(ctx, cfg.LLM, db.EventRepo(), log)
	switch {
	case errors.Is(err, llm.ErrNoProvider):
		log.Debug("no LLM provider configured, potential maps use the fallback")
	case err != nil:
		log.Warn("LLM provider unavailable, potential maps use the fallback", "error", err)
	default:
		gen = assessment.NewLLMGenerator(provider, assessment.GeneratorConfig{
			MaxTokens:   cfg.Assessment.MaxTokens,
			Temperature: cfg.Assessment.Temperature,
		})
	}
	e.assessment = assessment.NewService(gen, e.results, cfg.Assessment.Timeout, log)

	u, err := e.accounts.CurrentUser(ctx)
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("restore session: %w", err)
	}
	e.ctx = account.WithSession(ctx, u)
	return e, nil
}

func (e *env) Close() {
	if err := e.db.Close(); err != nil {
		e.log.Warn("close database", "error", err)
	}
	e.log.Sync()
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then db.path from the config, then IMPA_DB and the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DB.Path != "" {
		return cfg.DB.Path, store.EnsureDir(cfg.DB.Path)
	}
	return store.DefaultDBPath()
}

// renderWidth is the frame width used for printed views.
const renderWidth = 80
