package contract

import "quadratic_funding/sdk"

const (
	// kConfig stores the one-shot ContractConfig blob.
	kConfig byte = 0x00
	// kRound holds the active round counter as a decimal string.
	kRound byte = 0x01
	// kPool holds the serialized PoolAccount singleton.
	kPool byte = 0x02
	// kProject stores serialized Project records keyed by project id.
	kProject byte = 0x10
	// kProjectIndex lists every registered project id for settlement sweeps.
	kProjectIndex byte = 0x11
	// kVote stores cumulative ballots keyed by project id + voter address.
	kVote byte = 0x20
)

// configKey/roundKey/poolKey/projectIndexKey are singletons, one byte each.
func configKey() string       { return string([]byte{kConfig}) }
func roundKey() string        { return string([]byte{kRound}) }
func poolKey() string         { return string([]byte{kPool}) }
func projectIndexKey() string { return string([]byte{kProjectIndex}) }

// projectKey builds a storage key string for a project by content hash.
func projectKey(id ProjectId) string {
	buf := make([]byte, 0, 1+len(id))
	buf = append(buf, kProject)
	buf = append(buf, id[:]...)
	return string(buf)
}

// voteKey mixes project id plus address bytes to avoid nested maps in host storage.
func voteKey(id ProjectId, voter sdk.Address) string {
	addr := voter.String()
	buf := make([]byte, 0, 1+len(id)+len(addr))
	buf = append(buf, kVote)
	buf = append(buf, id[:]...)
	buf = append(buf, addr...)
	return string(buf)
}
