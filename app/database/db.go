package database

import "database/sql"

// Querier is satisfied by both *sql.DB and *sql.Tx. Billing reads take a
// Querier so the same query runs standalone or inside the invoice-generation
// transaction, keeping the transactional boundary explicit in the signature.
type Querier interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

var (
	_ Querier = (*sql.DB)(nil)
	_ Querier = (*sql.Tx)(nil)
)
