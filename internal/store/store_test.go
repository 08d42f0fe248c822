//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/travelpal/travelpal/internal/metrics"
	"github.com/travelpal/travelpal/internal/models"
	"github.com/travelpal/travelpal/internal/store"
)

// startMongo runs a throwaway MongoDB container for the test.
func startMongo(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor:   wait.ForListeningPort("27017/tcp").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err, "start mongo container")
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	endpoint, err := container.PortEndpoint(ctx, "27017/tcp", "")
	require.NoError(t, err)
	return "mongodb://" + endpoint
}

func TestUserStore(t *testing.T) {
	uri := startMongo(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	collector := metrics.NewCollector()
	client, err := store.NewClient(ctx, store.Config{URI: uri, Database: "travelpal_test"}, collector, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = client.Close(context.Background())
	})

	require.NoError(t, client.EnsureIndexes(ctx))
	users := client.Users()

	user := &models.User{
		Username:     "alice",
		Email:        "alice@example.com",
		PhoneNumber:  "+919812345678",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
	}
	require.NoError(t, users.Insert(ctx, user))
	assert.False(t, user.ID.IsZero(), "insert must backfill the id")

	t.Run("find by username", func(t *testing.T) {
		found, err := users.FindByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, user.Email, found.Email)
	})

	t.Run("find by email", func(t *testing.T) {
		found, err := users.FindByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.Username, found.Username)
	})

	t.Run("find by phone", func(t *testing.T) {
		found, err := users.FindByPhone(ctx, "+919812345678")
		require.NoError(t, err)
		assert.Equal(t, user.Username, found.Username)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := users.FindByUsername(ctx, "mallory")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("duplicate username rejected", func(t *testing.T) {
		dup := &models.User{
			Username:     "alice",
			Email:        "other@example.com",
			PhoneNumber:  "+911111111111",
			PasswordHash: "x",
		}
		err := users.Insert(ctx, dup)
		assert.ErrorIs(t, err, store.ErrDuplicate)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		dup := &models.User{
			Username:     "bob",
			Email:        "alice@example.com",
			PhoneNumber:  "+911111111111",
			PasswordHash: "x",
		}
		err := users.Insert(ctx, dup)
		assert.ErrorIs(t, err, store.ErrDuplicate)
	})

	t.Run("query timings recorded", func(t *testing.T) {
		snap := collector.Snapshot().DBQuery
		require.NotNil(t, snap)
		// Every insert and lookup above counts; zero-result lookups and
		// duplicate-key rejections are not failures.
		assert.GreaterOrEqual(t, snap.Count, int64(7))
		assert.Zero(t, snap.Errors)
	})
}
