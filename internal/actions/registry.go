package actions

import (
	"sort"
	"sync"
)

var (
	registry = make(map[string]*Action)
	mu       sync.RWMutex
)

// Register adds an action to the registry.
func Register(action *Action) {
	mu.Lock()
	defer mu.Unlock()
	registry[action.ID] = action
}

// Get retrieves an action by ID.
func Get(id string) *Action {
	mu.RLock()
	defer mu.RUnlock()
	return registry[id]
}

// ByParent returns all actions with the given parent, sorted by ID.
func ByParent(parentID string) []*Action {
	mu.RLock()
	defer mu.RUnlock()

	var actions []*Action
	for _, action := range registry {
		if action.Parent == parentID {
			actions = append(actions, action)
		}
	}

	sort.Slice(actions, func(i, j int) bool {
		return actions[i].ID < actions[j].ID
	})

	return actions
}

// TopLevel returns all top-level actions (no parent).
func TopLevel() []*Action {
	return ByParent("")
}

// GetChildren returns immediate children of an action.
func GetChildren(actionID string) []*Action {
	return ByParent(actionID)
}

// SetHandler sets the handler for an action.
func SetHandler(actionID string, handler Handler) {
	mu.Lock()
	defer mu.Unlock()
	if action, ok := registry[actionID]; ok {
		action.Handler = handler
	}
}
