package console

import "sync"

// Role and action values shared with the server.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"

	ActionCreate = "create"
	ActionRead   = "read"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Evaluator answers permission checks for the current session. Until Load is
// called every check fails: screens render nothing actionable before the
// session's grants have arrived, rather than flashing controls that a
// moment later turn out to be forbidden.
type Evaluator struct {
	mu     sync.RWMutex
	ready  bool
	role   string
	grants map[string]map[string]bool
}

func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Load installs a session's role and grants and marks the evaluator ready.
func (e *Evaluator) Load(sess *Session) {
	grants := make(map[string]map[string]bool, len(sess.Permissions))
	for _, g := range sess.Permissions {
		actions := make(map[string]bool, len(g.Actions))
		for _, a := range g.Actions {
			actions[a] = true
		}
		grants[g.Module] = actions
	}

	e.mu.Lock()
	e.role = sess.User.Role
	e.grants = grants
	e.ready = true
	e.mu.Unlock()
}

// Reset clears the loaded session. All checks fail again until the next Load.
func (e *Evaluator) Reset() {
	e.mu.Lock()
	e.ready = false
	e.role = ""
	e.grants = nil
	e.mu.Unlock()
}

// Ready reports whether a session has been loaded.
func (e *Evaluator) Ready() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.ready
}

// CanPerform reports whether the loaded session allows action on module.
// Admins pass every check; everyone else needs an explicit grant.
func (e *Evaluator) CanPerform(module, action string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if !e.ready {
		return false
	}
	if e.role == RoleAdmin {
		return true
	}
	return e.grants[module][action]
}
