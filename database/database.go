package database

import (
	"context"
	"fmt"

	mongoDB "TechTalks/database/mongo"
	"TechTalks/database/postgres"
	"github.com/jmoiron/sqlx"
	"go.mongodb.org/mongo-driver/mongo"
)

type Driver string

const (
	DriverMongo    Driver = "mongo"
	DriverPostgres Driver = "postgres"
	DriverMemory   Driver = "memory"
)

type Config struct {
	Driver       Driver
	MongoURI     string
	DatabaseName string
	PostgresDSN  string
}

// Connection is the process wide store handle injected into every repository.
// Exactly one of Mongo or Postgres is set, neither for the memory driver.
type Connection struct {
	Driver   Driver
	Mongo    *mongo.Database
	Postgres *sqlx.DB

	mongoClient *mongo.Client
}

func New(ctx context.Context, cfg Config) (*Connection, error) {
	switch cfg.Driver {
	case DriverMongo, "":
		client, db, err := mongoDB.New(ctx, cfg.MongoURI, cfg.DatabaseName)
		if err != nil {
			return nil, err
		}
		return &Connection{Driver: DriverMongo, Mongo: db, mongoClient: client}, nil
	case DriverPostgres:
		db, err := postgres.New(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		return &Connection{Driver: DriverPostgres, Postgres: db}, nil
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

func NewMemory() *Connection {
	return &Connection{Driver: DriverMemory}
}

func (c *Connection) Close(ctx context.Context) error {
	switch c.Driver {
	case DriverMongo:
		if c.mongoClient != nil {
			return c.mongoClient.Disconnect(ctx)
		}
	case DriverPostgres:
		if c.Postgres != nil {
			return c.Postgres.Close()
		}
	}
	return nil
}
