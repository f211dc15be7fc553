package database

import (
	"database/sql"
	"errors"

	"github.com/TungTV17/HostelFinder-sub000/app/models"
	"github.com/shopspring/decimal"
)

// ErrInsufficientBalance is returned when a wallet debit exceeds the balance.
var ErrInsufficientBalance = errors.New("insufficient wallet balance")

func GetWalletByUserID(db *sql.DB, userID string) (*models.Wallet, error) {
	wallet := &models.Wallet{}
	query := `SELECT id, user_id, balance, created_at, updated_at FROM wallets WHERE user_id = $1`

	err := db.QueryRow(query, userID).Scan(
		&wallet.ID, &wallet.UserID, &wallet.Balance, &wallet.CreatedAt, &wallet.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return wallet, nil
}

// CreatePendingDeposit opens a deposit transaction for a gateway checkout.
// The webhook settles it later by order code.
func CreatePendingDeposit(db *sql.DB, userID, orderCode string, amount decimal.Decimal) (*models.WalletTransaction, error) {
	wallet, err := GetWalletByUserID(db, userID)
	if err != nil {
		return nil, err
	}

	txn := &models.WalletTransaction{
		WalletID:  wallet.ID,
		OrderCode: orderCode,
		Type:      models.TransactionDeposit,
		Status:    models.TransactionPending,
		Amount:    amount,
	}
	query := `INSERT INTO wallet_transactions (wallet_id, order_code, type, status, amount)
			  VALUES ($1, $2, 'deposit', 'pending', $3)
			  RETURNING id, created_at, updated_at`
	err = db.QueryRow(query, txn.WalletID, txn.OrderCode, txn.Amount).Scan(
		&txn.ID, &txn.CreatedAt, &txn.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return txn, nil
}

// SettleDepositByOrderCode marks the pending deposit completed and credits
// the wallet in one transaction. Re-delivered webhooks find no pending row
// and return (false, nil), making settlement idempotent.
func SettleDepositByOrderCode(db *sql.DB, orderCode string) (bool, error) {
	tx, err := db.Begin()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	var txnID, walletID string
	var amount decimal.Decimal
	query := `UPDATE wallet_transactions SET status = 'completed', updated_at = NOW()
			  WHERE order_code = $1 AND status = 'pending'
			  RETURNING id, wallet_id, amount`
	err = tx.QueryRow(query, orderCode).Scan(&txnID, &walletID, &amount)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	_, err = tx.Exec(`UPDATE wallets SET balance = balance + $1, updated_at = NOW() WHERE id = $2`,
		amount, walletID)
	if err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	return true, nil
}

// DebitWallet takes amount from the user's wallet and records the movement.
// Runs inside the caller's transaction so a failed purchase rolls the debit
// back with it.
func DebitWallet(tx *sql.Tx, userID string, amount decimal.Decimal, txnType models.TransactionType, note string) error {
	var walletID string
	var balance decimal.Decimal
	err := tx.QueryRow(`SELECT id, balance FROM wallets WHERE user_id = $1 FOR UPDATE`, userID).Scan(
		&walletID, &balance,
	)
	if err != nil {
		return err
	}
	if balance.LessThan(amount) {
		return ErrInsufficientBalance
	}

	_, err = tx.Exec(`UPDATE wallets SET balance = balance - $1, updated_at = NOW() WHERE id = $2`,
		amount, walletID)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`INSERT INTO wallet_transactions (wallet_id, type, status, amount, note)
					  VALUES ($1, $2, 'completed', $3, $4)`,
		walletID, string(txnType), amount, note)
	return err
}

func GetWalletTransactions(db *sql.DB, userID string) ([]*models.WalletTransaction, error) {
	query := `SELECT wt.id, wt.wallet_id, COALESCE(wt.order_code, ''), wt.type, wt.status,
			  wt.amount, COALESCE(wt.note, ''), wt.created_at, wt.updated_at
			  FROM wallet_transactions wt
			  JOIN wallets w ON w.id = wt.wallet_id
			  WHERE w.user_id = $1
			  ORDER BY wt.created_at DESC`

	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txns []*models.WalletTransaction
	for rows.Next() {
		txn := &models.WalletTransaction{}
		var txnType, status string
		err := rows.Scan(
			&txn.ID, &txn.WalletID, &txn.OrderCode, &txnType, &status,
			&txn.Amount, &txn.Note, &txn.CreatedAt, &txn.UpdatedAt,
		)
		if err != nil {
			continue
		}
		txn.Type = models.TransactionType(txnType)
		txn.Status = models.TransactionStatus(status)
		txns = append(txns, txn)
	}
	return txns, nil
}
