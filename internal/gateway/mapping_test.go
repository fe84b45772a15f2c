package gateway

import (
	"testing"

	"github.com/eaglebank/account-grpc/internal/accountpb"
	"github.com/eaglebank/account-grpc/internal/models"
)

func TestToWireType(t *testing.T) {
	tests := []struct {
		stored string
		want   accountpb.AccountType
	}{
		{stored: "COURANT", want: accountpb.AccountType_CURRENT},
		{stored: "courant", want: accountpb.AccountType_CURRENT},
		{stored: "Courant", want: accountpb.AccountType_CURRENT},
		{stored: "EPARGNE", want: accountpb.AccountType_SAVINGS},
		{stored: "CURRENT", want: accountpb.AccountType_SAVINGS},
		{stored: " COURANT", want: accountpb.AccountType_SAVINGS},
		{stored: "", want: accountpb.AccountType_SAVINGS},
		{stored: "personal", want: accountpb.AccountType_SAVINGS},
	}
	for _, tt := range tests {
		t.Run(tt.stored, func(t *testing.T) {
			got := ToWire(models.Account{Type: tt.stored}).Type
			if got != tt.want {
				t.Errorf("type %q: expected %v got %v", tt.stored, tt.want, got)
			}
		})
	}
}

func TestTypeRoundTrip(t *testing.T) {
	for _, typ := range []accountpb.AccountType{accountpb.AccountType_CURRENT, accountpb.AccountType_SAVINGS} {
		entity := ToEntity(&accountpb.AccountInput{Type: typ})
		if got := ToWire(entity).Type; got != typ {
			t.Errorf("round trip of %v produced %v (stored %q)", typ, got, entity.Type)
		}
	}
}

func TestToEntity(t *testing.T) {
	tests := []struct {
		name string
		in   *accountpb.AccountInput
		want models.Account
	}{
		{
			name: "current",
			in:   &accountpb.AccountInput{Solde: 12.5, DateCreation: "2024-05-06T10:00:00", Type: accountpb.AccountType_CURRENT},
			want: models.Account{Solde: 12.5, DateCreation: "2024-05-06T10:00:00", Type: "COURANT"},
		},
		{
			name: "savings",
			in:   &accountpb.AccountInput{Solde: 100, DateCreation: "2024-01-01", Type: accountpb.AccountType_SAVINGS},
			want: models.Account{Solde: 100, DateCreation: "2024-01-01", Type: "EPARGNE"},
		},
		{
			name: "nil payload is a zero-valued current account",
			in:   nil,
			want: models.Account{Type: "COURANT"},
		},
		{
			name: "unknown enum number falls back to savings",
			in:   &accountpb.AccountInput{Type: accountpb.AccountType(7)},
			want: models.Account{Type: "EPARGNE"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToEntity(tt.in); got != tt.want {
				t.Errorf("[%s] expected %+v got %+v", tt.name, tt.want, got)
			}
		})
	}
}

func TestToWireNarrowsBalance(t *testing.T) {
	got := ToWire(models.Account{ID: "x", Solde: 0.1, DateCreation: "d"})
	if got.Solde != float32(0.1) {
		t.Errorf("expected %v got %v", float32(0.1), got.Solde)
	}
	if got.Id != "x" || got.DateCreation != "d" {
		t.Errorf("unexpected account %v", got)
	}
}
