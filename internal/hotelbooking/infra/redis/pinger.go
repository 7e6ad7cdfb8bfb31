package redis

import (
	"context"

	"github.com/stayforge/hotel-booking-service/internal/hotelbooking/app/service"
	pkgredis "github.com/stayforge/hotel-booking-service/pkg/redis"
)

type pinger struct {
	conn pkgredis.Connection
}

func NewPinger(conn pkgredis.Connection) service.Pinger {
	return pinger{conn: conn}
}

func (p pinger) Name() string {
	return "redis"
}

func (p pinger) Ping(ctx context.Context) error {
	return p.conn.Client().Ping(ctx).Err()
}
