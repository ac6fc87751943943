package server

import (
	"sync"
)

type sessionState int

const (
	// stateConnected is the initial state of a registered connection
	// before it has been bound to a user.
	stateConnected sessionState = iota
	// stateAuthenticated is the state of a connection bound to a user
	// and joined to that user's room.
	stateAuthenticated
	// stateTerminated is the terminal state, entered when the connection
	// is unregistered.
	stateTerminated
)

type session struct {
	client *Client
	userId string
	state  sessionState
}

// Registry tracks every live connection and the set of connections bound to
// each user (the user's "room"). Both structures plus the online-user counter
// are guarded by a single mutex so a registry change and its paired room
// change are always observed together.
type Registry struct {
	mu sync.Mutex
	// conns maps connection id to its session
	conns map[string]*session
	// rooms maps user id to the user's live, authenticated connections
	rooms map[string]map[string]*Client
	// online is the number of non-empty rooms, maintained incrementally
	online int
}

func NewRegistry() *Registry {
	return &Registry{
		conns: make(map[string]*session),
		rooms: make(map[string]map[string]*Client),
	}
}

// Register adds a connection with no bound user.
func (r *Registry) Register(id string, c *Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.conns[id]; ok {
		return ErrDuplicateConnection
	}

	r.conns[id] = &session{client: c, state: stateConnected}
	return nil
}

// Bind binds a connection to a user and joins the user's room as one step.
// It reports whether the user came online with this bind. Re-binding to the
// same user is a no-op; re-binding to a different user is rejected.
func (r *Registry) Bind(id, userId string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.conns[id]
	if !ok {
		return false, ErrUnknownConnection
	}

	if s.state == stateAuthenticated {
		if s.userId == userId {
			return false, nil
		}
		return false, ErrAlreadyAuthenticated
	}

	s.userId = userId
	s.state = stateAuthenticated

	room, ok := r.rooms[userId]
	if !ok {
		room = make(map[string]*Client)
		r.rooms[userId] = room
		r.online++
	}
	room[id] = s.client

	return !ok, nil
}

// Unregister removes a connection from the registry and from its room in the
// same step. It returns the previously bound user id (empty if the connection
// was unauthenticated), whether that user went offline, and whether the
// connection existed. Unregistering an absent connection is a no-op.
func (r *Registry) Unregister(id string) (string, bool, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.conns[id]
	if !ok {
		return "", false, false
	}

	delete(r.conns, id)

	var offline bool
	if s.state == stateAuthenticated {
		if room, ok := r.rooms[s.userId]; ok {
			delete(room, id)
			if len(room) == 0 {
				delete(r.rooms, s.userId)
				r.online--
				offline = true
			}
		}
	}

	s.state = stateTerminated
	return s.userId, offline, true
}

// BoundUser returns the user id a connection is bound to, if any.
func (r *Registry) BoundUser(id string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.conns[id]
	if !ok || s.state != stateAuthenticated {
		return "", false
	}

	return s.userId, true
}

// MembersOf returns a point-in-time snapshot of the user's live connections.
// Membership may change immediately after return.
func (r *Registry) MembersOf(userId string) []*Client {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.rooms[userId]
	if !ok {
		return nil
	}

	members := make([]*Client, 0, len(room))
	for _, c := range room {
		members = append(members, c)
	}

	return members
}

// Clients returns a snapshot of every registered connection, authenticated
// or not.
func (r *Registry) Clients() []*Client {
	r.mu.Lock()
	defer r.mu.Unlock()

	clients := make([]*Client, 0, len(r.conns))
	for _, s := range r.conns {
		clients = append(clients, s.client)
	}

	return clients
}

// OnlineUserCount returns the number of distinct users with at least one
// live, authenticated connection.
func (r *Registry) OnlineUserCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.online
}

// Len returns the number of registered connections.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.conns)
}
