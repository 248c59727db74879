package contract

import (
	"lukechampine.com/blake3"

	"quadratic_funding/sdk"
)

// getSenderAddress returns the verified identity of the current caller.
func getSenderAddress() sdk.Address {
	return getSDK().Sender()
}

// DeriveProjectId builds the content hash for a project from its owner and
// name, used when a registration payload leaves the id field empty.
// Example payload: DeriveProjectId("hive:alice", "my project")
func DeriveProjectId(owner sdk.Address, name string) ProjectId {
	h := blake3.New(32, nil)
	h.Write([]byte(owner.String()))
	h.Write([]byte{0})
	h.Write([]byte(name))
	var id ProjectId
	copy(id[:], h.Sum(nil))
	return id
}

// EnsureRuntime lazily wires the real host implementations; entry points call
// it so the wasm module works without a separate bootstrap step.
func EnsureRuntime() {
	if state == nil {
		InitState(false)
	}
	if sdkInterface == nil {
		InitSDKInterface(false)
	}
}
