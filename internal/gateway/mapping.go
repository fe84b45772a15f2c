package gateway

import (
	"strings"

	"github.com/eaglebank/account-grpc/internal/accountpb"
	"github.com/eaglebank/account-grpc/internal/models"
)

// ToWire converts a stored account to its wire form. Only a case-insensitive
// "COURANT" maps to CURRENT; every other type string, including an empty one,
// is reported as SAVINGS.
func ToWire(a models.Account) *accountpb.Account {
	return &accountpb.Account{
		Id:           a.ID,
		Solde:        float32(a.Solde),
		DateCreation: a.DateCreation,
		Type:         typeToWire(a.Type),
	}
}

// ToEntity converts a save payload to a new persistence record. The ID is left
// empty for the store to assign. A nil payload yields a zero-valued CURRENT
// record.
func ToEntity(in *accountpb.AccountInput) models.Account {
	return models.Account{
		Solde:        float64(in.GetSolde()),
		DateCreation: in.GetDateCreation(),
		Type:         typeToEntity(in.GetType()),
	}
}

func typeToWire(s string) accountpb.AccountType {
	if strings.EqualFold(s, models.TypeCourant) {
		return accountpb.AccountType_CURRENT
	}
	return accountpb.AccountType_SAVINGS
}

func typeToEntity(t accountpb.AccountType) string {
	if t == accountpb.AccountType_CURRENT {
		return models.TypeCourant
	}
	return models.TypeEpargne
}
