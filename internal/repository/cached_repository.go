package repository

import (
	"context"
	"time"

	"github.com/eaglebank/account-grpc/internal/events"
	"github.com/eaglebank/account-grpc/internal/gateway"
	"github.com/eaglebank/account-grpc/internal/logger"
	"github.com/eaglebank/account-grpc/internal/models"
	sharedredis "github.com/eaglebank/account-grpc/internal/redis"
	goredis "github.com/redis/go-redis/v9"
)

const accountKeyPrefix = "account:"

// EventPublisher announces saved accounts to other instances.
type EventPublisher interface {
	PublishAccountSaved(ctx context.Context, account models.Account) error
}

// CachedAccountRepository wraps another store with a Redis read-through cache
// for single-account lookups and announces every save on the account stream.
// List queries always go to the wrapped store.
type CachedAccountRepository struct {
	next      gateway.AccountStore
	cache     *sharedredis.ViewCache[models.Account]
	publisher EventPublisher
}

// NewCachedAccountRepository builds the decorator. publisher may be nil to
// skip event publication.
func NewCachedAccountRepository(next gateway.AccountStore, client *goredis.Client, ttl time.Duration, publisher EventPublisher) *CachedAccountRepository {
	return &CachedAccountRepository{
		next:      next,
		cache:     sharedredis.NewViewCache[models.Account](client, ttl),
		publisher: publisher,
	}
}

func (r *CachedAccountRepository) FindAll(ctx context.Context) ([]models.Account, error) {
	return r.next.FindAll(ctx)
}

// FindByID tries Redis first, then the wrapped store, warming the cache on a
// hit. Misses are not cached.
func (r *CachedAccountRepository) FindByID(ctx context.Context, id string) (models.Account, bool, error) {
	if cached, ok := r.cache.Get(ctx, accountKeyPrefix+id); ok {
		return *cached, true, nil
	}

	account, found, err := r.next.FindByID(ctx, id)
	if err != nil || !found {
		return account, found, err
	}

	r.cache.Set(ctx, accountKeyPrefix+account.ID, &account)
	return account, true, nil
}

func (r *CachedAccountRepository) Save(ctx context.Context, account models.Account) (models.Account, error) {
	saved, err := r.next.Save(ctx, account)
	if err != nil {
		return models.Account{}, err
	}

	r.cache.Set(ctx, accountKeyPrefix+saved.ID, &saved)

	if r.publisher != nil {
		if err := r.publisher.PublishAccountSaved(ctx, saved); err != nil {
			logger.Error("failed to publish account.saved event", err, logger.Fields{"id": saved.ID})
		}
	}
	return saved, nil
}

// HandleAccountEvent evicts the cached copy of an account saved by another
// instance so the next lookup reads the store.
func (r *CachedAccountRepository) HandleAccountEvent(ctx context.Context, event events.Event) error {
	if event.Type != events.AccountSaved {
		return nil
	}
	var data events.AccountSavedEvent
	if err := events.DecodeData(event, &data); err != nil {
		return err
	}
	r.cache.Delete(ctx, accountKeyPrefix+data.ID)
	return nil
}
