package contract

// Abort symbols for the caller-visible error taxonomy. Every one aborts the
// executing transaction; the host rolls back all state written before it.
const (
	errDuplicateProject   = "duplicate project"
	errProjectNotExist    = "project not exist"
	errInvalidBallot      = "invalid ballot"
	errDonationTooSmall   = "donation too small"
	errInvalidRound       = "invalid round"
	errArithmeticOverflow = "arithmetic overflow"
	errTransferFailed     = "transfer failed"

	errAlreadyInitialized = "contract already initialized"
	errNotInitialized     = "contract not initialized"
	errAdminOnly          = "admin only"

	errInvalidPayload   = "invalid payload"
	errInvalidProjectId = "invalid project id"
	errCorruptState     = "corrupt state"
)

// abortWith funnels every failure through the host abort.
func abortWith(symbol string) {
	getSDK().Abort(symbol)
	panic(symbol)
}
