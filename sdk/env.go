package sdk

// Env is the per-transaction environment snapshot supplied by the host.
type Env struct {
	ContractId  string  `json:"contract.id"`
	TxId        string  `json:"tx.id"`
	BlockId     string  `json:"block.id"`
	BlockHeight uint64  `json:"block.height"`
	Timestamp   string  `json:"block.timestamp"`
	Sender      Sender  `json:"sender"`
	Caller      Address `json:"caller"`
}
