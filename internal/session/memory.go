package session

// Memory is an in-process Session. The cookie middleware injects the real
// implementation; this one is provided as a convenience for testing guarded
// code without a live cookie store.
type Memory struct {
	id      int64
	present bool

	// Renewed and Saved count calls for assertions.
	Renewed int
	Saved   int
	// SaveErr, when set, is returned by Save.
	SaveErr error
}

// NewMemory returns an empty, unauthenticated session.
func NewMemory() *Memory {
	return &Memory{}
}

// NewMemoryWithUser returns a session already holding a user id.
func NewMemoryWithUser(id int64) *Memory {
	return &Memory{id: id, present: true}
}

func (m *Memory) UserID() (int64, bool) {
	if !m.present || m.id == 0 {
		return 0, false
	}
	return m.id, true
}

func (m *Memory) SetUserID(id int64) {
	m.id = id
	m.present = true
}

func (m *Memory) Renew() {
	m.Renewed++
}

func (m *Memory) Save() error {
	m.Saved++
	return m.SaveErr
}
