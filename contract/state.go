package contract

import "quadratic_funding/sdk"

// State is the kv surface the ledger persists through. The wasm host provides
// the real implementation; tests swap in MockState.
type State interface {
	Set(key, value string)
	Get(key string) *string
	Delete(key string)
}

// singleton state used everywhere
var state State

// WasmState forwards straight to the host kv store.
type WasmState struct{}

func (WasmState) Set(key, value string) { sdk.StateSetObject(key, value) }
func (WasmState) Get(key string) *string {
	return sdk.StateGetObject(key)
}
func (WasmState) Delete(key string) { sdk.StateDeleteObject(key) }

func InitState(localDebug bool) {
	if localDebug {
		state = NewMockState()
	} else {
		state = WasmState{}
	}
}

func getState() State {
	return state
}
