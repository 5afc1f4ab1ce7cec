package cli

import (
	"context"
	"fmt"

	"github.com/aretw0/registrar/internal/config"
	"github.com/aretw0/registrar/pkg/adapters/memory"
	"github.com/aretw0/registrar/pkg/adapters/redis"
	"github.com/aretw0/registrar/pkg/adapters/sqldb"
	"github.com/aretw0/registrar/pkg/ports"
)

// OpenStore connects the record store selected by cfg.
func OpenStore(ctx context.Context, cfg config.Config) (ports.RecordStore, error) {
	switch cfg.Store.Driver {
	case config.DriverSQLite, config.DriverPostgres:
		return sqldb.Open(ctx, cfg.Store.Driver, cfg.Store.DSN)
	case config.DriverRedis:
		store := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
			redis.WithPrefix(cfg.Redis.Prefix))
		if err := store.Ping(ctx); err != nil {
			_ = store.Close()
			return nil, err
		}
		return store, nil
	case config.DriverMemory:
		return memory.NewStore(), nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}
