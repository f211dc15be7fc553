package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettleDepositCreditsWallet(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE wallet_transactions SET status").
		WithArgs("ORD-123").
		WillReturnRows(sqlmock.NewRows([]string{"id", "wallet_id", "amount"}).
			AddRow("txn-1", "wallet-1", "150000"))
	mock.ExpectExec("UPDATE wallets SET balance = balance \\+").
		WithArgs(sqlmock.AnyArg(), "wallet-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	settled, err := SettleDepositByOrderCode(db, "ORD-123")
	require.NoError(t, err)
	assert.True(t, settled)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettleDepositIdempotentOnRedelivery(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// no pending row left: the first delivery already completed it
	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE wallet_transactions SET status").
		WithArgs("ORD-123").
		WillReturnRows(sqlmock.NewRows([]string{"id", "wallet_id", "amount"}))
	mock.ExpectRollback()

	settled, err := SettleDepositByOrderCode(db, "ORD-123")
	require.NoError(t, err)
	assert.False(t, settled)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDebitWalletInsufficientBalance(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id, balance FROM wallets").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "balance"}).
			AddRow("wallet-1", "50000"))
	mock.ExpectRollback()

	tx, err := db.Begin()
	require.NoError(t, err)
	defer tx.Rollback()

	err = DebitWallet(tx, "user-1", decimal.NewFromInt(99000), "membership", "standard plan")
	assert.ErrorIs(t, err, ErrInsufficientBalance)
}
