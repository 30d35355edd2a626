package model

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// PaymentRecord is one settled charge in the ledger. Records are append-only
// from the engine's point of view: they are authored here as drafts, handed
// to the ledger, and never mutated afterwards.
type PaymentRecord struct {
	ID               string      `json:"id"` // ULID, so ledger order stays audit-legible
	ClientID         int64       `json:"client_id"`
	TierID           int64       `json:"tier_id"`
	Amount           int64       `json:"amount"`
	Mode             PaymentMode `json:"mode"`
	IsInitialDeposit bool        `json:"is_initial_deposit"`
	PaymentDate      Date        `json:"payment_date"`
	CreatedAt        time.Time   `json:"created_at"`
}

// NewPaymentRecord authors a ledger record draft.
func NewPaymentRecord(clientID, tierID, amount int64, mode PaymentMode, deposit bool, paymentDate Date) *PaymentRecord {
	return &PaymentRecord{
		ID:               ulid.Make().String(),
		ClientID:         clientID,
		TierID:           tierID,
		Amount:           amount,
		Mode:             mode,
		IsInitialDeposit: deposit,
		PaymentDate:      paymentDate,
		CreatedAt:        time.Now(),
	}
}

// FailedLeg identifies the client whose record could not be persisted during
// a multi-record settlement, with the gateway message passed through verbatim
// so the operator can retry just that leg.
type FailedLeg struct {
	ClientID int64  `json:"client_id"`
	Reason   string `json:"reason"`
}

// SettlementResult reports what a submission actually persisted. A duo
// purchase whose second write fails yields Created with one record and a
// non-nil Failed marker; this partial state is never discarded, because
// resubmitting the whole purchase would double-charge the first client.
type SettlementResult struct {
	Created []*PaymentRecord `json:"created"`
	Failed  *FailedLeg       `json:"failed,omitempty"`
}

// Settled reports whether every record of the settlement was persisted.
func (r *SettlementResult) Settled() bool { return r.Failed == nil }
