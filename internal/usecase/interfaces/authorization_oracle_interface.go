package interfaces

import (
	"context"
	"upi_escrow/internal/domain/entities"
)

// IAuthorizationOracle asserts whether a proof authorizes the current call on
// behalf of a principal. The ledger trusts its answer as-is.
//
// A proof that is absent, malformed or issued for another principal must be
// reported as (false, nil); an error is reserved for the oracle itself failing.
type IAuthorizationOracle interface {
	Verify(ctx context.Context, proof entities.AuthorizationProof, principal entities.Principal) (bool, error)
}
