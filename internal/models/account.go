package models

// Account is the persistence form of an account as stored in the accounts table.
// Type is free-form; rows written by this service carry "COURANT" or "EPARGNE".
type Account struct {
	ID           string  `json:"id"`
	Solde        float64 `json:"solde"`
	DateCreation string  `json:"dateCreation"`
	Type         string  `json:"type"`
}

const (
	TypeCourant = "COURANT"
	TypeEpargne = "EPARGNE"
)
