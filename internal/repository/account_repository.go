package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/eaglebank/account-grpc/internal/models"
	"github.com/google/uuid"
)

// AccountRepository stores accounts in PostgreSQL, the source of truth.
type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) FindAll(ctx context.Context) ([]models.Account, error) {
	query := `
		SELECT id, solde, date_creation, type
		FROM accounts
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	accounts := []models.Account{}
	for rows.Next() {
		var a models.Account
		if err := rows.Scan(&a.ID, &a.Solde, &a.DateCreation, &a.Type); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}
	return accounts, nil
}

func (r *AccountRepository) FindByID(ctx context.Context, id string) (models.Account, bool, error) {
	query := `
		SELECT id, solde, date_creation, type
		FROM accounts
		WHERE id = $1
	`
	var a models.Account
	err := r.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.Solde, &a.DateCreation, &a.Type)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, false, nil
	}
	if err != nil {
		return models.Account{}, false, fmt.Errorf("failed to get account: %w", err)
	}
	return a, true, nil
}

// Save inserts the account, or replaces every column of an existing row with
// the same id. An empty id is assigned a new UUID.
func (r *AccountRepository) Save(ctx context.Context, account models.Account) (models.Account, error) {
	if account.ID == "" {
		account.ID = uuid.NewString()
	}
	query := `
		INSERT INTO accounts (id, solde, date_creation, type)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET solde = EXCLUDED.solde, date_creation = EXCLUDED.date_creation, type = EXCLUDED.type
		RETURNING id, solde, date_creation, type
	`
	var saved models.Account
	err := r.db.QueryRowContext(ctx, query,
		account.ID, account.Solde, account.DateCreation, account.Type,
	).Scan(&saved.ID, &saved.Solde, &saved.DateCreation, &saved.Type)
	if err != nil {
		return models.Account{}, fmt.Errorf("failed to save account: %w", err)
	}
	return saved, nil
}
