package contract

import (
	"errors"
	"fmt"

	"quadratic_funding/sdk"
)

// SDKInterface is the seam between ledger logic and the host runtime:
// logging, aborts, caller identity and the currency collaborator.
type SDKInterface interface {
	Log(msg string)
	Abort(msg string)
	Sender() sdk.Address
	// Draw pulls tokens from the transaction sender into the contract's
	// custodial account. The host enforces keep-alive minimum balances.
	Draw(amount int64, asset sdk.Asset) error
	// Transfer pays tokens out of the custodial account.
	Transfer(to sdk.Address, amount int64, asset sdk.Asset) error
}

// globals
var sdkInterface SDKInterface

func InitSDKInterface(mock bool) {
	if mock {
		sdkInterface = NewMockSDK()
	} else {
		sdkInterface = &RealSDK{}
	}
}

func getSDK() SDKInterface {
	return sdkInterface
}

// RealSDK implements the interface with the actual host bindings.
type RealSDK struct{}

func (r *RealSDK) Log(msg string) { sdk.Log(msg) }

func (r *RealSDK) Abort(msg string) { sdk.Abort(msg) }

func (r *RealSDK) Sender() sdk.Address {
	return sdk.GetEnv().Sender.Address
}

func (r *RealSDK) Draw(amount int64, asset sdk.Asset) error {
	return sdk.HiveDraw(amount, asset)
}

func (r *RealSDK) Transfer(to sdk.Address, amount int64, asset sdk.Asset) error {
	return sdk.HiveTransfer(to, amount, asset)
}

// MockTransfer records one simulated currency movement for assertions.
type MockTransfer struct {
	To     sdk.Address
	Amount int64
	Asset  sdk.Asset
}

// abortPanic wraps the abort symbol so the test harness can tell a contract
// abort apart from an ordinary panic.
type abortPanic struct {
	Symbol string
}

// MockSDK simulates the host: it captures logs and transfers and can be
// scripted to refuse draws or payouts.
type MockSDK struct {
	SenderAddr sdk.Address
	Logs       []string
	Draws      []MockTransfer
	Transfers  []MockTransfer

	FailDraw       bool
	FailTransferTo map[sdk.Address]bool
}

func NewMockSDK() *MockSDK {
	return &MockSDK{
		SenderAddr:     sdk.Address("hive:someone"),
		FailTransferTo: map[sdk.Address]bool{},
	}
}

func (m *MockSDK) Log(msg string) {
	m.Logs = append(m.Logs, msg)
}

func (m *MockSDK) Abort(msg string) {
	panic(abortPanic{Symbol: msg})
}

func (m *MockSDK) Sender() sdk.Address {
	return m.SenderAddr
}

func (m *MockSDK) Draw(amount int64, asset sdk.Asset) error {
	if m.FailDraw {
		return errors.New("insufficient balance")
	}
	m.Draws = append(m.Draws, MockTransfer{To: sdk.Address("contract:self"), Amount: amount, Asset: asset})
	return nil
}

func (m *MockSDK) Transfer(to sdk.Address, amount int64, asset sdk.Asset) error {
	if m.FailTransferTo[to] {
		return fmt.Errorf("transfer to %s refused", to)
	}
	m.Transfers = append(m.Transfers, MockTransfer{To: to, Amount: amount, Asset: asset})
	return nil
}
