package test

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tidepool-org/glucoguide/store"
	"github.com/tidepool-org/glucoguide/test"
)

const (
	mongoHostEnv = "TIDEPOOL_TEST_MONGO_HOST"
	mongoTimeout = time.Second * 5
)

var (
	database *mongo.Database
)

// SetupDatabase connects to the mongo instance named by TIDEPOOL_TEST_MONGO_HOST.
// Specs relying on GetTestDatabase are skipped when it isn't set.
func SetupDatabase() {
	host := os.Getenv(mongoHostEnv)
	if host == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()

	client, err := store.NewClient(ctx, host)
	Expect(err).ToNot(HaveOccurred())
	Expect(client.Ping(ctx, nil)).To(Succeed())

	databaseName := fmt.Sprintf("glucoguide_test_%s_%d", test.Faker.Letter(), ginkgo.GinkgoParallelProcess())
	database = client.Database(databaseName)
}

func TeardownDatabase() {
	if database == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()

	Expect(database.Drop(ctx)).To(Succeed())
	Expect(database.Client().Disconnect(ctx)).To(Succeed())
	database = nil
}

func GetTestDatabase() *mongo.Database {
	if database == nil {
		ginkgo.Skip(fmt.Sprintf("%s is not set", mongoHostEnv))
	}
	return database
}

// RedisServer is an in-process redis server with a store connected to it.
type RedisServer struct {
	Server *miniredis.Miniredis
	Client *redis.Client
	Store  store.Store
}

func StartRedis() *RedisServer {
	server, err := miniredis.Run()
	Expect(err).ToNot(HaveOccurred())

	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	return &RedisServer{
		Server: server,
		Client: client,
		Store:  store.NewRedisStore(client),
	}
}

func (r *RedisServer) Close() {
	Expect(r.Client.Close()).To(Succeed())
	r.Server.Close()
}
