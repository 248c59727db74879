package contract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterProject(t *testing.T) {
	_, mock := setupContract()

	id := registerAs(t, mock, "hive:alice", "clean water")

	prj := loadProject(id)
	require.NotNil(t, prj)
	assert.Equal(t, "hive:alice", prj.Owner.String())
	assert.Equal(t, "clean water", prj.Name)
	assert.Equal(t, uint64(1), prj.Round)
	assert.True(t, prj.TotalVotes.IsZero())
	assert.True(t, prj.SupportArea.IsZero())
	assert.True(t, prj.Grants.IsZero())
	assert.True(t, prj.Withdrew.IsZero())

	require.Len(t, listProjectIds(), 1)
	assert.Equal(t, id, listProjectIds()[0])

	require.NotEmpty(t, mock.Logs)
	assert.True(t, strings.HasPrefix(mock.Logs[len(mock.Logs)-1], "pr|id:"+id.String()))
}

func TestRegisterDuplicateAborts(t *testing.T) {
	_, mock := setupContract()

	id := registerAs(t, mock, "hive:alice", "clean water")
	before := *getState().Get(projectKey(id))

	asSender(mock, "hive:bob")
	expectAbort(t, errDuplicateProject, func() {
		RegisterProject(strptr(id.String() + "|stolen name"))
	})

	// first registration untouched
	assert.Equal(t, before, *getState().Get(projectKey(id)))
	assert.Len(t, listProjectIds(), 1)
}

func TestRegisterWithExplicitId(t *testing.T) {
	_, mock := setupContract()
	asSender(mock, "hive:alice")

	id := DeriveProjectId("hive:someone-else", "whatever")
	res := RegisterProject(strptr(id.String() + "|named project"))
	require.NotNil(t, res)
	assert.Equal(t, id.String(), *res)
	require.NotNil(t, loadProject(id))
}

func TestRegisterDerivesContentHash(t *testing.T) {
	_, mock := setupContract()

	id := registerAs(t, mock, "hive:alice", "clean water")
	assert.Equal(t, DeriveProjectId("hive:alice", "clean water"), id)

	// same name, different owner: distinct id
	id2 := registerAs(t, mock, "hive:bob", "clean water")
	assert.NotEqual(t, id, id2)
}

// The round counter is stamped once at genesis and never reset by later
// registrations.
func TestRoundStampedOncePerLedger(t *testing.T) {
	_, mock := setupContract()

	assert.Equal(t, uint64(0), currentRound())
	registerAs(t, mock, "hive:alice", "first")
	assert.Equal(t, uint64(1), currentRound())

	asSender(mock, "hive:admin")
	ContractInit(nil)
	AdvanceRound(strptr("2"))

	prj2 := registerAs(t, mock, "hive:bob", "second")
	assert.Equal(t, uint64(2), currentRound())
	assert.Equal(t, uint64(2), loadProject(prj2).Round)
	// first project keeps its original stamp
	first := DeriveProjectId("hive:alice", "first")
	assert.Equal(t, uint64(1), loadProject(first).Round)
}

func TestGetProject(t *testing.T) {
	_, mock := setupContract()

	id := registerAs(t, mock, "hive:alice", "clean water")

	res := GetProject(strptr(id.String()))
	require.NotNil(t, res)
	assert.Contains(t, *res, `"owner":"hive:alice"`)

	missing := DeriveProjectId("hive:nobody", "missing")
	assert.Nil(t, GetProject(strptr(missing.String())))
}

func TestContractInitOneShot(t *testing.T) {
	_, mock := setupContract()
	asSender(mock, "hive:admin")

	res := ContractInit(nil)
	require.NotNil(t, res)

	expectAbort(t, errAlreadyInitialized, func() {
		ContractInit(nil)
	})

	cfg := loadConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, "hive:admin", cfg.Admin.String())
}
