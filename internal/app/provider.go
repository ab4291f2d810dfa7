package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hazelsoft/userdir/internal/config"
	"github.com/hazelsoft/userdir/internal/platform/db"
	"github.com/hazelsoft/userdir/internal/platform/router"
	"github.com/hazelsoft/userdir/internal/platform/validation"
	"github.com/hazelsoft/userdir/internal/user"
)

type Provider struct {
	DB        *sql.DB
	Router    router.Router
	Validator validation.Validator
	UserRepo  user.Repository
}

func newProvider(ctx context.Context, cfg *config.Options) (*Provider, error) {
	provider := &Provider{
		Router:    router.NewGoexpressRouter(),
		Validator: validation.NewGoPlaygroundValidator(),
	}

	if cfg.DB.Driver == "memory" {
		provider.UserRepo = user.NewMemoryRepository()
		return provider, nil
	}

	dbConn, err := db.NewConnection(ctx, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("new db connection: %w", err)
	}

	provider.DB = dbConn
	provider.UserRepo = user.NewSQLRepository(dbConn)
	return provider, nil
}
