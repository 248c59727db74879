package contract

// MockState keeps everything in memory so tests can run without a chain.
// Snapshot/Restore mirror the host's whole-transaction rollback on abort.
type MockState struct {
	db map[string]string
}

func NewMockState() *MockState {
	return &MockState{db: make(map[string]string)}
}

func (m *MockState) Set(key, value string) {
	m.db[key] = value
}

func (m *MockState) Get(key string) *string {
	val, ok := m.db[key]
	if !ok {
		return nil
	}
	return &val
}

func (m *MockState) Delete(key string) {
	delete(m.db, key)
}

// Snapshot copies the full map so a failed call can be rolled back byte for byte.
func (m *MockState) Snapshot() map[string]string {
	snap := make(map[string]string, len(m.db))
	for k, v := range m.db {
		snap[k] = v
	}
	return snap
}

// Restore replaces the map with an earlier snapshot.
func (m *MockState) Restore(snap map[string]string) {
	m.db = make(map[string]string, len(snap))
	for k, v := range snap {
		m.db[k] = v
	}
}
