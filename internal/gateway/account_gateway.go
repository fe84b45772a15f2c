package gateway

import (
	"context"
	"fmt"

	"github.com/eaglebank/account-grpc/internal/accountpb"
	"github.com/eaglebank/account-grpc/internal/logger"
	"github.com/eaglebank/account-grpc/internal/models"
)

// AccountStore is the persistence collaborator. FindByID reports absence with
// found == false and a nil error.
type AccountStore interface {
	FindAll(ctx context.Context) ([]models.Account, error)
	FindByID(ctx context.Context, id string) (models.Account, bool, error)
	Save(ctx context.Context, account models.Account) (models.Account, error)
}

// AccountGateway serves bank.v1.AccountService on top of an AccountStore.
// It keeps no state between calls.
type AccountGateway struct {
	accountpb.UnimplementedAccountServiceServer

	store AccountStore
	stats StatsFunc
}

type Option func(*AccountGateway)

// WithStats replaces the default float32 aggregation.
func WithStats(fn StatsFunc) Option {
	return func(g *AccountGateway) {
		if fn != nil {
			g.stats = fn
		}
	}
}

func NewAccountGateway(store AccountStore, opts ...Option) *AccountGateway {
	g := &AccountGateway{store: store, stats: Float32Stats}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *AccountGateway) ListAccounts(ctx context.Context, _ *accountpb.ListAccountsRequest) (*accountpb.ListAccountsResponse, error) {
	entities, err := g.store.FindAll(ctx)
	if err != nil {
		logger.Error("list accounts failed", err, nil)
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	accounts := make([]*accountpb.Account, 0, len(entities))
	for _, e := range entities {
		accounts = append(accounts, ToWire(e))
	}
	return &accountpb.ListAccountsResponse{Accounts: accounts}, nil
}

// GetAccountById answers a miss with a zero-valued account rather than an
// error, so callers see an empty id for unknown accounts.
func (g *AccountGateway) GetAccountById(ctx context.Context, req *accountpb.GetAccountByIdRequest) (*accountpb.GetAccountByIdResponse, error) {
	id := req.GetId()
	entity, found, err := g.store.FindByID(ctx, id)
	if err != nil {
		logger.Error("get account failed", err, logger.Fields{"id": id})
		return nil, fmt.Errorf("failed to get account %s: %w", id, err)
	}
	if !found {
		logger.Info("account not found, returning default", logger.Fields{"id": id})
		return &accountpb.GetAccountByIdResponse{Account: &accountpb.Account{}}, nil
	}
	return &accountpb.GetAccountByIdResponse{Account: ToWire(entity)}, nil
}

func (g *AccountGateway) GetTotalBalance(ctx context.Context, _ *accountpb.GetTotalBalanceRequest) (*accountpb.GetTotalBalanceResponse, error) {
	entities, err := g.store.FindAll(ctx)
	if err != nil {
		logger.Error("total balance failed", err, nil)
		return nil, fmt.Errorf("failed to compute total balance: %w", err)
	}
	return &accountpb.GetTotalBalanceResponse{Stats: g.stats(entities)}, nil
}

// SaveAccount persists the payload and returns what the store kept. Whether
// that is an insert or a replacement is up to the store.
func (g *AccountGateway) SaveAccount(ctx context.Context, req *accountpb.SaveAccountRequest) (*accountpb.SaveAccountResponse, error) {
	entity := ToEntity(req.GetAccount())
	saved, err := g.store.Save(ctx, entity)
	if err != nil {
		logger.Error("save account failed", err, logger.Fields{"type": entity.Type})
		return nil, fmt.Errorf("failed to save account: %w", err)
	}
	return &accountpb.SaveAccountResponse{Account: ToWire(saved)}, nil
}
