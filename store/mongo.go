package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	kvCollectionName = "kv"
)

type document struct {
	Key   string `bson:"_id"`
	Value string `bson:"value"`
}

type mongoStore struct {
	collection *mongo.Collection
}

var _ Store = &mongoStore{}

func NewMongoStore(db *mongo.Database) Store {
	return &mongoStore{
		collection: db.Collection(kvCollectionName),
	}
}

func newMongoStoreWithLifecycle(cfg *Config, logger *zap.SugaredLogger, lifecycle fx.Lifecycle) (Store, error) {
	connectionString, err := cfg.GetConnectionString()
	if err != nil {
		return nil, err
	}

	ctx, cancel := NewDbContext()
	defer cancel()

	client, err := NewClient(ctx, connectionString)
	if err != nil {
		return nil, err
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Infow("connected to mongo", "database", cfg.DatabaseName)
			return client.Ping(ctx, nil)
		},
		OnStop: func(ctx context.Context) error {
			return client.Disconnect(ctx)
		},
	})

	return NewMongoStore(client.Database(cfg.DatabaseName)), nil
}

func (m *mongoStore) Get(ctx context.Context, key string) (*string, error) {
	doc := document{}
	err := m.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("error fetching key %s: %w", key, err)
	}

	return &doc.Value, nil
}

func (m *mongoStore) Set(ctx context.Context, key string, value string) error {
	opts := options.Replace().SetUpsert(true)
	doc := document{Key: key, Value: value}
	if _, err := m.collection.ReplaceOne(ctx, bson.M{"_id": key}, doc, opts); err != nil {
		return fmt.Errorf("error storing key %s: %w", key, err)
	}

	return nil
}

func (m *mongoStore) Ping(ctx context.Context) error {
	return m.collection.Database().Client().Ping(ctx, nil)
}
