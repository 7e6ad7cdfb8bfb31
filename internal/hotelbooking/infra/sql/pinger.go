package sql

import (
	"context"

	"github.com/stayforge/hotel-booking-service/internal/hotelbooking/app/service"
	pkgsql "github.com/stayforge/hotel-booking-service/pkg/sql"
)

type pinger struct {
	db pkgsql.Client
}

func NewPinger(db pkgsql.Client) service.Pinger {
	return pinger{db: db}
}

func (p pinger) Name() string {
	return "postgres"
}

func (p pinger) Ping(ctx context.Context) error {
	_, err := p.db.ExecContext(ctx, "SELECT 1")
	return err
}
