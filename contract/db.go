package contract

import (
	"strconv"

	"github.com/holiman/uint256"

	"quadratic_funding/sdk"
)

////////////////////////////////////////////////////////////////////////////////
// Contract State Persistence helpers
////////////////////////////////////////////////////////////////////////////////

func saveProject(id ProjectId, p *Project) {
	getState().Set(projectKey(id), encodeProject(p))
}

// loadProject returns nil when the id is unknown; corrupt blobs abort.
func loadProject(id ProjectId) *Project {
	ptr := getState().Get(projectKey(id))
	if ptr == nil || *ptr == "" {
		return nil
	}
	p := decodeProject(*ptr)
	if p == nil {
		abortWith(errCorruptState)
	}
	return p
}

func projectExists(id ProjectId) bool {
	ptr := getState().Get(projectKey(id))
	return ptr != nil && *ptr != ""
}

// mustLoadProject aborts with the caller-visible error when missing.
func mustLoadProject(id ProjectId) *Project {
	p := loadProject(id)
	if p == nil {
		abortWith(errProjectNotExist)
	}
	return p
}

// addProjectToIndex appends the id to the sweep list, skipping duplicates.
func addProjectToIndex(id ProjectId) {
	ids := listProjectIds()
	for _, v := range ids {
		if v == id {
			return
		}
	}
	ids = append(ids, id)
	getState().Set(projectIndexKey(), encodeIdList(ids))
}

func listProjectIds() []ProjectId {
	ptr := getState().Get(projectIndexKey())
	if ptr == nil || *ptr == "" {
		return []ProjectId{}
	}
	ids := decodeIdList(*ptr)
	if ids == nil {
		abortWith(errCorruptState)
	}
	return ids
}

// getVotes reads the voter's cumulative ballots on a project, zero by default.
func getVotes(id ProjectId, voter sdk.Address) *uint256.Int {
	ptr := getState().Get(voteKey(id, voter))
	if ptr == nil || *ptr == "" {
		return new(uint256.Int)
	}
	v, err := uint256.FromDecimal(*ptr)
	if err != nil {
		abortWith(errCorruptState)
	}
	return v
}

func setVotes(id ProjectId, voter sdk.Address, v *uint256.Int) {
	getState().Set(voteKey(id, voter), v.Dec())
}

// loadPool returns the zero-valued singleton before the first mutation.
func loadPool() *PoolAccount {
	ptr := getState().Get(poolKey())
	if ptr == nil || *ptr == "" {
		return &PoolAccount{}
	}
	pool := decodePool(*ptr)
	if pool == nil {
		abortWith(errCorruptState)
	}
	return pool
}

func savePool(pool *PoolAccount) {
	getState().Set(poolKey(), encodePool(pool))
}

// currentRound reads the round counter, zero until genesis stamping.
func currentRound() uint64 {
	ptr := getState().Get(roundKey())
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, err := strconv.ParseUint(*ptr, 10, 64)
	if err != nil {
		abortWith(errCorruptState)
	}
	return n
}

func setRound(n uint64) {
	getState().Set(roundKey(), strconv.FormatUint(n, 10))
}

func loadConfig() *ContractConfig {
	ptr := getState().Get(configKey())
	if ptr == nil || *ptr == "" {
		return nil
	}
	cfg := decodeConfig(*ptr)
	if cfg == nil {
		abortWith(errCorruptState)
	}
	return cfg
}

func saveConfig(cfg *ContractConfig) {
	getState().Set(configKey(), encodeConfig(cfg))
}
