package ledger

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
)

var (
	// ErrVerified rejects entry mutation on a verified account until the
	// verification is explicitly reverted.
	ErrVerified = errors.New("ledger: account is verified, entries are immutable")

	// ErrDerivedEntry rejects hand edits to system-derived rows; they are
	// rebuilt wholesale from facts on every recompute.
	ErrDerivedEntry = errors.New("ledger: derived entries are recomputed, not edited")

	ErrEntryNotFound = errors.New("ledger: no entry with that id")
)

// VerificationError reports a verification attempt that failed its
// zero-balance precondition: which side the residual sits on and by how much.
type VerificationError struct {
	Account  string
	Residual int64
}

func (e *VerificationError) Error() string {
	if e.Residual > 0 {
		return fmt.Sprintf("%s account is short by Rs. %s", e.Account, humanize.Comma(e.Residual))
	}
	return fmt.Sprintf("%s account is over by Rs. %s", e.Account, humanize.Comma(-e.Residual))
}
