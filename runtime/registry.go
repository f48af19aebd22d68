package runtime

import (
	"chat-relay/domain"
	"chat-relay/errors"
	"fmt"
	"sync"

	"github.com/samber/lo"
)

type Set[T comparable] map[T]struct{}

// Registry tracks live connections and their group memberships.
//
// Two indexes are kept behind a single lock and always mutated together:
// connections maps a connection to the groups it joined, groupMembers maps a
// group to its member connections. A connection is in a group's member set
// iff the group is in the connection's membership set.
//
// Every read returns a copy, so callers can iterate without holding the lock
// while the registry keeps changing underneath.
type Registry struct {
	mu           sync.RWMutex
	connections  map[domain.ConnectionID]Set[domain.GroupID]
	groupMembers map[domain.GroupID]Set[domain.ConnectionID]
}

func NewRegistry() *Registry {
	return &Registry{
		connections:  make(map[domain.ConnectionID]Set[domain.GroupID]),
		groupMembers: make(map[domain.GroupID]Set[domain.ConnectionID]),
	}
}

// Register adds a connection with no membership.
func (r *Registry) Register(connectionID domain.ConnectionID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.connections[connectionID]; ok {
		return fmt.Errorf("%w: %s", errors.ErrDuplicateConnection, connectionID)
	}
	r.connections[connectionID] = make(Set[domain.GroupID])
	return nil
}

// Unregister removes the connection and every membership it holds.
// Transports may report a disconnect more than once, so an absent
// connection is not an error.
func (r *Registry) Unregister(connectionID domain.ConnectionID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	groups, ok := r.connections[connectionID]
	if !ok {
		return
	}
	for groupID := range groups {
		r.removeMember(groupID, connectionID)
	}
	delete(r.connections, connectionID)
}

// Join adds the connection to the group, creating the group on the fly.
func (r *Registry) Join(connectionID domain.ConnectionID, groupID domain.GroupID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	groups, ok := r.connections[connectionID]
	if !ok {
		return fmt.Errorf("%w: %s", errors.ErrUnknownConnection, connectionID)
	}
	groups[groupID] = struct{}{}

	if _, ok := r.groupMembers[groupID]; !ok {
		r.groupMembers[groupID] = make(Set[domain.ConnectionID])
	}
	r.groupMembers[groupID][connectionID] = struct{}{}
	return nil
}

// Leave removes the connection from the group. Leaving a group the
// connection is not part of is a no-op.
func (r *Registry) Leave(connectionID domain.ConnectionID, groupID domain.GroupID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if groups, ok := r.connections[connectionID]; ok {
		delete(groups, groupID)
	}
	r.removeMember(groupID, connectionID)
}

// DissolveGroup drops every membership of the group and returns the former members.
func (r *Registry) DissolveGroup(groupID domain.GroupID) []domain.ConnectionID {
	r.mu.Lock()
	defer r.mu.Unlock()

	members, ok := r.groupMembers[groupID]
	if !ok {
		return nil
	}
	for connectionID := range members {
		if groups, ok := r.connections[connectionID]; ok {
			delete(groups, groupID)
		}
	}
	delete(r.groupMembers, groupID)
	return lo.Keys(members)
}

// MembersOf returns a snapshot of the group's member connections.
func (r *Registry) MembersOf(groupID domain.GroupID) []domain.ConnectionID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.groupMembers[groupID]
	if !ok {
		return []domain.ConnectionID{}
	}
	return lo.Keys(members)
}

// Connections returns a snapshot of every registered connection.
func (r *Registry) Connections() []domain.ConnectionID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lo.Keys(r.connections)
}

// GroupsOf returns a snapshot of the connection's memberships, nil when
// the connection is not registered.
func (r *Registry) GroupsOf(connectionID domain.ConnectionID) []domain.GroupID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	groups, ok := r.connections[connectionID]
	if !ok {
		return nil
	}
	return lo.Keys(groups)
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.connections)
}

// removeMember must be called with the write lock held.
// Empty groups are deleted so they do not accumulate over time.
func (r *Registry) removeMember(groupID domain.GroupID, connectionID domain.ConnectionID) {
	members, ok := r.groupMembers[groupID]
	if !ok {
		return
	}
	delete(members, connectionID)
	if len(members) == 0 {
		delete(r.groupMembers, groupID)
	}
}
