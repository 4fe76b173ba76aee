package client

import "sync"

type renewalRole int

const (
	// roleLeader must perform the renewal and settle it.
	roleLeader renewalRole = iota
	// roleWaiter waits for the renewal in flight.
	roleWaiter
	// roleRenewed replays right away, the token was already replaced.
	roleRenewed
	// roleExpired gives up, no refresh token is left to renew with.
	roleExpired
)

// renewal is the pending request queue. inFlight is true iff exactly one
// renewal call is outstanding; every waiter registered while it is true is
// released exactly once by settle.
type renewal struct {
	mu       sync.Mutex
	inFlight bool
	waiters  []chan error
}

// join decides the role of a request that got a 401. While a renewal is in
// flight every caller becomes a waiter. Otherwise decide runs under the lock
// and picks roleLeader, roleRenewed or roleExpired; only roleLeader marks a
// renewal as in flight.
func (r *renewal) join(decide func() renewalRole) (renewalRole, <-chan error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.inFlight {
		ch := make(chan error, 1)
		r.waiters = append(r.waiters, ch)
		return roleWaiter, ch
	}
	role := decide()
	if role == roleLeader {
		r.inFlight = true
	}
	return role, nil
}

// settle clears the in-flight flag and releases all waiters with err
// (nil means replay).
func (r *renewal) settle(err error) {
	r.mu.Lock()
	queue := r.waiters
	r.waiters = nil
	r.inFlight = false
	r.mu.Unlock()

	for _, ch := range queue {
		ch <- err
	}
}

func (r *renewal) pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.waiters)
}

func (r *renewal) active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.inFlight
}
