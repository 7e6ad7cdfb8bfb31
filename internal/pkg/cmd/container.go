package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/stayforge/hotel-booking-service/data/sql/hotelbooking"
	"github.com/stayforge/hotel-booking-service/pkg/cmd"
	"github.com/stayforge/hotel-booking-service/pkg/env"
	"github.com/stayforge/hotel-booking-service/pkg/log"
	"github.com/stayforge/hotel-booking-service/pkg/metric"
	pkgredis "github.com/stayforge/hotel-booking-service/pkg/redis"
	pkgsql "github.com/stayforge/hotel-booking-service/pkg/sql"
)

type Config struct {
	ServerAddress string
	JWTSecret     string
	TokenTTL      time.Duration
}

type InfrastructureContainer struct {
	Config  Config
	Logger  log.Logger
	Metrics metric.Metrics
	DB      pkgsql.Database
	Redis   pkgredis.Connection
}

func MustInitInfrastructure(ctx context.Context) *InfrastructureContainer {
	logger := cmd.InitLogger()

	config := Config{
		ServerAddress: env.Must(env.ParseDefault[string]("APP_ADDRESS", ":8080")),
		JWTSecret:     env.Must(env.Parse[string]("JWT_SECRET")),
		TokenTTL:      time.Duration(env.Must(env.ParseDefault[int]("JWT_EXPIRE_HOURS", 24))) * time.Hour,
	}

	return &InfrastructureContainer{
		Config:  config,
		Logger:  logger,
		Metrics: metric.NewPrometheusMetrics(),
		DB:      mustInitSQL(ctx, logger),
		Redis:   mustInitRedis(ctx, logger),
	}
}

func (c *InfrastructureContainer) Close(ctx context.Context) {
	c.Redis.Close(ctx)
	c.DB.Close(ctx)
}

func mustInitSQL(ctx context.Context, logger log.Logger) pkgsql.Database {
	config := &pkgsql.Config{
		DSN: pkgsql.DSN{
			User:     env.Must(env.Parse[string]("SQL_USER")),
			Password: env.Must(env.Parse[string]("SQL_PASSWORD")),
			Address:  env.Must(env.Parse[string]("SQL_ADDRESS")),
			Database: env.Must(env.Parse[string]("SQL_DATABASE")),
		},
		MaxOpenConnections: env.Must(env.ParseDefault[int]("SQL_MAX_OPEN_CONNECTIONS", 10)),
	}
	connTimeout := env.Must(env.ParseOptional[time.Duration]("SQL_CONNECTION_TIMEOUT"))
	if connTimeout != nil {
		config.ConnectionTimeout = *connTimeout
	}

	db, err := pkgsql.NewDatabase(config, logger)
	if err != nil {
		panic(fmt.Errorf("open sql connection: %w", err))
	}

	err = pkgsql.NewMigrator(db, logger).Execute(ctx, hotelbooking.Migrations)
	if err != nil {
		db.Close(ctx)
		panic(fmt.Errorf("execute migrations: %w", err))
	}

	return db
}

func mustInitRedis(ctx context.Context, logger log.Logger) pkgredis.Connection {
	config := &pkgredis.Config{
		Address:  env.Must(env.Parse[string]("REDIS_ADDRESS")),
		Password: env.Must(env.ParseDefault[string]("REDIS_PASSWORD", "")),
		DB:       env.Must(env.ParseDefault[int]("REDIS_DB", 0)),
	}
	connTimeout := env.Must(env.ParseOptional[time.Duration]("REDIS_CONNECTION_TIMEOUT"))
	if connTimeout != nil {
		config.ConnectionTimeout = *connTimeout
	}

	conn, err := pkgredis.NewConnection(ctx, config, logger)
	if err != nil {
		panic(fmt.Errorf("open redis connection: %w", err))
	}

	return conn
}
