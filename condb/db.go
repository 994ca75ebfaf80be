package condb

import (
	"context"

	"github.com/jackc/pgx/v4"

	"kafe/config"
)

// Connect opens one connection for one request. The caller owns it and must
// close it on every exit path.
func Connect(ctx context.Context, cfg *config.Config) (*pgx.Conn, error) {
	conn, err := pgx.Connect(ctx, cfg.Database.DSN())
	if err != nil {
		return nil, err
	}

	return conn, nil
}
