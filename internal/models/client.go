// Package models defines the record types shared by the server and the
// client-side synchronization controller.
package models

import "time"

// Client is a business client record.
//
// Value is a decimal amount kept as its text representation end to end:
// the column is numeric, but scanning and marshalling go through a string
// so amounts round-trip without floating-point loss.
type Client struct {
	// ID is the server-generated identifier (uuid).
	ID string `json:"id"`
	// Name is the client's display name.
	Name string `json:"name"`
	// Type is either "Persona" or "Compañía".
	Type string `json:"type"`
	// Value is the contract amount as a decimal string.
	Value string `json:"value"`
	// DateFrom / DateTo bound the engagement period. Nullable.
	DateFrom *string `json:"date_from"`
	DateTo   *string `json:"date_to"`
	// CreatedAt is server-assigned and immutable; lists are ordered by it.
	CreatedAt time.Time `json:"created_at"`
}
