package contract

import (
	"testing"

	"github.com/stretchr/testify/require"

	"quadratic_funding/sdk"
)

// setupContract wires the mock host the way the chain harness would and
// returns both mocks for scripting and assertions.
func setupContract() (*MockState, *MockSDK) {
	InitState(true)
	InitSDKInterface(true)
	return state.(*MockState), sdkInterface.(*MockSDK)
}

// expectAbort runs fn like the host runs a transaction: it must abort with
// the given symbol, and every state mutation is rolled back.
func expectAbort(t *testing.T, symbol string, fn func()) {
	t.Helper()
	ms := state.(*MockState)
	snap := ms.Snapshot()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected abort %q", symbol)
		ap, ok := r.(abortPanic)
		require.True(t, ok, "non-abort panic: %v", r)
		require.Equal(t, symbol, ap.Symbol)
		ms.Restore(snap)
	}()
	fn()
}

func asSender(mock *MockSDK, addr string) {
	mock.SenderAddr = sdk.Address(addr)
}

// registerAs registers a project for the given sender and returns its id.
func registerAs(t *testing.T, mock *MockSDK, sender, name string) ProjectId {
	t.Helper()
	asSender(mock, sender)
	res := RegisterProject(strptr("|" + name))
	require.NotNil(t, res)
	id, ok := ProjectIdFromHex(*res)
	require.True(t, ok)
	return id
}

// voteAs casts a ballot for the given sender.
func voteAs(t *testing.T, mock *MockSDK, sender string, id ProjectId, ballot string) {
	t.Helper()
	asSender(mock, sender)
	Vote(strptr(id.String() + "|" + ballot))
}
