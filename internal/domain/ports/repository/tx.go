package repository

import (
	"context"

	"github.com/jackc/pgx/v4"
)

// Tx is an opaque transaction handle passed through repository calls. The
// concrete type is infra-defined (pgx.Tx for Postgres); repositories must
// gracefully accept NoTX for the non-transactional path.
type Tx interface{}

// NoTX is the explicit "no transaction" handle.
var NoTX Tx

// TransactionManager executes a function inside a database transaction,
// handing the tx handle to repositories through the Tx argument. It keeps
// transaction types out of the use-case interfaces.
type TransactionManager interface {
	WithTx(ctx context.Context, txOpt pgx.TxOptions, fn func(ctx context.Context, tx Tx) error) error
}
