package models

// ChargingMethod defines how a service is billed on a monthly invoice.
type ChargingMethod string

const (
	ChargePerUnit   ChargingMethod = "per_unit"   // metered, billed on consumption
	ChargePerPerson ChargingMethod = "per_person" // billed per current occupant
	ChargeFlat      ChargingMethod = "flat"       // fixed monthly amount
)

// TransferMethod defines how an invoice was settled.
type TransferMethod string

const (
	TransferCash   TransferMethod = "cash"
	TransferBank   TransferMethod = "bank_transfer"
	TransferWallet TransferMethod = "wallet"
)

// TransactionType defines the direction of a wallet transaction.
type TransactionType string

const (
	TransactionDeposit    TransactionType = "deposit"
	TransactionWithdraw   TransactionType = "withdraw"
	TransactionMembership TransactionType = "membership"
)

// TransactionStatus defines the lifecycle of a wallet transaction.
type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
	TransactionFailed    TransactionStatus = "failed"
)

// PostStatus defines the visibility of a rental listing.
type PostStatus string

const (
	PostActive PostStatus = "active"
	PostHidden PostStatus = "hidden"
)
