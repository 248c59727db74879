//go:build test
// +build test

package sdk

// Pure-Go stand-ins for the wasm host imports so the module links under
// `go test -tags test`. Contract tests never reach these directly; they run
// against the contract package's State/SDKInterface mocks instead.

func Log(s string) {}

func Abort(msg string) {
	panic(msg)
}

func StateSetObject(key string, value string) {}

func StateGetObject(key string) *string { return nil }

func StateDeleteObject(key string) {}

func GetEnv() Env { return Env{} }

func GetEnvKey(key string) *string { return nil }

func GetBalance(address Address, asset Asset) int64 { return 0 }

func HiveDraw(amount int64, asset Asset) error { return nil }

func HiveTransfer(to Address, amount int64, asset Asset) error { return nil }
