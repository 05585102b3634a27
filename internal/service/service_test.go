package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"wiccapedia-api/internal/dto"
	"wiccapedia-api/internal/model"
	"wiccapedia-api/internal/pkg/apperror"
	"wiccapedia-api/internal/pkg/cache"
	"wiccapedia-api/internal/pkg/logger"
	"wiccapedia-api/internal/repository/specification"
	"wiccapedia-api/internal/repository/unitofwork"
	"wiccapedia-api/pkg/catalog"
	"wiccapedia-api/pkg/database"
	"wiccapedia-api/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTopic = "entity.created"

func newTestFactory(t *testing.T) unitofwork.RepositoryFactory {
	t.Helper()
	return newTestFactoryWith(t, model.All()...)
}

func newTestFactoryWith(t *testing.T, models ...interface{}) unitofwork.RepositoryFactory {
	t.Helper()
	db, err := database.NewGormDB(database.Options{
		Driver:   database.DriverSQLite,
		DSN:      database.SQLiteDSN(filepath.Join(t.TempDir(), "test.db")),
		LogLevel: "silent",
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, models...))
	return unitofwork.NewRepositoryFactory(db)
}

func newPubSub(t *testing.T) *gochannel.GoChannel {
	t.Helper()
	pubSub := gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 16}, watermill.NopLogger{})
	t.Cleanup(func() { _ = pubSub.Close() })
	return pubSub
}

type recordingForwarder struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (f *recordingForwarder) Publish(_ context.Context, event events.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return f.err
}

func (f *recordingForwarder) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.events)
}

func TestCreatedEntitiesAreAudited(t *testing.T) {
	factory := newTestFactory(t)
	pubSub := newPubSub(t)
	log := logger.NewNopLogger()
	forwarder := &recordingForwarder{err: errors.New("nats down")}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	consumer := NewConsumerService(pubSub, testTopic, factory, forwarder, log)
	require.NoError(t, consumer.Consume(ctx))

	publisher := NewPublisherService(testTopic, pubSub, log)
	users := NewUserService(factory, publisher)
	decorations := NewDecorationService(factory, publisher)

	user, err := users.Create(ctx, &dto.CreateUserRequest{Username: "alice"})
	require.NoError(t, err)
	_, err = decorations.Create(ctx, &dto.CreateDecorationRequest{Type: dto.DecorationTypeColor, Value: "#fff"})
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		recorded, err := factory.NewUnitOfWork(ctx).EntityEventRepository().FindAll(ctx)
		return err == nil && len(recorded) == 2
	}, 5*time.Second, 20*time.Millisecond)

	recorded, err := factory.NewUnitOfWork(ctx).EntityEventRepository().FindAll(ctx, specification.ByEntity{Entity: "user"})
	require.NoError(t, err)
	require.Len(t, recorded, 1)
	assert.Equal(t, events.TypeEntityCreated, recorded[0].Type)
	assert.Equal(t, int64ID(user.Id), recorded[0].EntityId)

	// forwarding failures do not block persistence
	assert.Eventually(t, func() bool { return forwarder.count() == 2 }, 5*time.Second, 20*time.Millisecond)
}

type errorCountingLogger struct {
	logger.ILogger
	mu     sync.Mutex
	errors int
}

func (l *errorCountingLogger) Error(module, message string, details map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors++
}

func (l *errorCountingLogger) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.errors
}

func TestUnpersistableEventIsDroppedOnce(t *testing.T) {
	// no entity_events table
	factory := newTestFactoryWith(t, &model.User{})
	pubSub := newPubSub(t)
	log := &errorCountingLogger{ILogger: logger.NewNopLogger()}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	consumer := NewConsumerService(pubSub, testTopic, factory, nil, log)
	require.NoError(t, consumer.Consume(ctx))

	users := NewUserService(factory, NewPublisherService(testTopic, pubSub, logger.NewNopLogger()))
	_, err := users.Create(ctx, &dto.CreateUserRequest{Username: "alice"})
	require.NoError(t, err)

	assert.Eventually(t, func() bool { return log.count() >= 1 }, 5*time.Second, 20*time.Millisecond)
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, 1, log.count())

	// the consumer is still free for later events
	_, err = users.Create(ctx, &dto.CreateUserRequest{Username: "bob"})
	require.NoError(t, err)
	assert.Eventually(t, func() bool { return log.count() == 2 }, 5*time.Second, 20*time.Millisecond)
}

func TestFailedCreatePublishesNothing(t *testing.T) {
	factory := newTestFactory(t)
	pubSub := newPubSub(t)
	ctx := context.Background()

	messages, err := pubSub.Subscribe(ctx, testTopic)
	require.NoError(t, err)

	notebooks := NewNotebookService(factory, NewPublisherService(testTopic, pubSub, logger.NewNopLogger()))
	_, err = notebooks.Create(ctx, &dto.CreateNotebookRequest{UserId: 1, CoverId: 1})
	assert.ErrorIs(t, err, apperror.ErrConstraintViolation)

	select {
	case msg := <-messages:
		t.Fatalf("unexpected event %s", msg.Payload)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestCoverServiceDefault(t *testing.T) {
	factory := newTestFactory(t)
	publisher := NewPublisherService(testTopic, newPubSub(t), logger.NewNopLogger())
	path := filepath.Join(t.TempDir(), "cover.json")

	svc := NewCoverService(factory, publisher, path, time.Minute)

	_, err := svc.GetDefault(context.Background())
	assert.ErrorIs(t, err, apperror.ErrAssetMissing)

	require.NoError(t, os.WriteFile(path, []byte(`{"v":"5"}`), 0o644))
	res, err := svc.GetDefault(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DefaultCoverTitle, res.Title)
	assert.Equal(t, `{"v":"5"}`, res.AnimationDocument)

	// served from memory once read
	require.NoError(t, os.Remove(path))
	res, err = svc.GetDefault(context.Background())
	require.NoError(t, err)
	assert.Equal(t, `{"v":"5"}`, res.AnimationDocument)
}

type countingCache struct {
	cache.Cache
	mu   sync.Mutex
	hits int
}

func (c *countingCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	found, err := c.Cache.Get(ctx, key, dest)
	if found {
		c.mu.Lock()
		c.hits++
		c.mu.Unlock()
	}
	return found, err
}

func TestGemMetadataIsCached(t *testing.T) {
	factory := newTestFactory(t)
	publisher := NewPublisherService(testTopic, newPubSub(t), logger.NewNopLogger())
	metadataCache := &countingCache{Cache: cache.NewMemoryCache(time.Minute)}
	svc := NewGemService(factory, publisher, metadataCache, time.Minute, logger.NewNopLogger())
	ctx := context.Background()

	_, err := svc.Create(ctx, &dto.CreateGemRequest{Name: "Jade", Category: "Silicato", Color: "Verde"})
	require.NoError(t, err)

	colors, err := svc.Metadata(ctx, catalog.FieldColor)
	require.NoError(t, err)
	assert.Equal(t, []string{"Verde"}, colors)
	assert.Zero(t, metadataCache.hits)

	colors, err = svc.Metadata(ctx, catalog.FieldColor)
	require.NoError(t, err)
	assert.Equal(t, []string{"Verde"}, colors)
	assert.Equal(t, 1, metadataCache.hits)

	_, err = svc.Create(ctx, &dto.CreateGemRequest{Name: "Ónix", Category: "Calcedonia", Color: "Negro"})
	require.NoError(t, err)

	colors, err = svc.Metadata(ctx, catalog.FieldColor)
	require.NoError(t, err)
	assert.Equal(t, []string{"Negro", "Verde"}, colors)
	assert.Equal(t, 1, metadataCache.hits)
}

func TestGemListPageSize(t *testing.T) {
	factory := newTestFactory(t)
	publisher := NewPublisherService(testTopic, newPubSub(t), logger.NewNopLogger())
	svc := NewGemService(factory, publisher, cache.NewMemoryCache(time.Minute), time.Minute, logger.NewNopLogger())
	ctx := context.Background()

	for _, name := range []string{"Jade", "Ónix", "Citrino"} {
		_, err := svc.Create(ctx, &dto.CreateGemRequest{Name: name})
		require.NoError(t, err)
	}

	page, err := svc.List(ctx, &dto.ListGemsRequest{Limit: 500})
	require.NoError(t, err)
	assert.Equal(t, catalog.MaxLimit, page.Pagination.PageSize)
	assert.Len(t, page.Data, 3)
	assert.False(t, page.Pagination.HasNext)
	assert.Nil(t, page.Pagination.NextCursor)
}

func TestGemNameIsTrimmed(t *testing.T) {
	factory := newTestFactory(t)
	publisher := NewPublisherService(testTopic, newPubSub(t), logger.NewNopLogger())
	svc := NewGemService(factory, publisher, cache.NewMemoryCache(time.Minute), time.Minute, logger.NewNopLogger())
	ctx := context.Background()

	gem, err := svc.Create(ctx, &dto.CreateGemRequest{Name: "  Ojo de Tigre "})
	require.NoError(t, err)
	assert.Equal(t, "Ojo de Tigre", gem.Name)
	assert.Equal(t, "images/ojo-de-tigre.jpg", gem.Image)

	_, err = svc.Create(ctx, &dto.CreateGemRequest{Name: "   "})
	assert.ErrorIs(t, err, apperror.ErrValidation)

	_, err = svc.Update(ctx, &dto.UpdateGemRequest{Id: gem.Id, Name: "\t"})
	assert.ErrorIs(t, err, apperror.ErrValidation)

	page, err := svc.List(ctx, &dto.ListGemsRequest{})
	require.NoError(t, err)
	assert.Len(t, page.Data, 1)
}
