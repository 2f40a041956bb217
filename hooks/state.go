package hooks

import (
	"github.com/wippyai/trace-bridge/errors"
)

// ModuleHook observes or overrides a module's result during the backward
// pass. A nil result keeps the previous one.
type ModuleHook func(module any, result any, args ...any) (any, error)

// State is the opaque backward-state object the compiled region carries into
// the backward pass: named hooks, named ordered hook lists, and named
// modules, looked up by name at call time.
type State struct {
	hooks     map[string]Hook
	hookLists map[string][]ModuleHook
	modules   map[string]any
}

// NewState creates an empty backward state.
func NewState() *State {
	return &State{
		hooks:     make(map[string]Hook),
		hookLists: make(map[string][]ModuleHook),
		modules:   make(map[string]any),
	}
}

// AddHook stores a single hook under name.
func (s *State) AddHook(name string, h Hook) *State {
	s.hooks[name] = h
	return s
}

// AddHookList stores an ordered hook list under name. Call order is
// preserved exactly as given.
func (s *State) AddHookList(name string, hs []ModuleHook) *State {
	s.hookLists[name] = hs
	return s
}

// AddModule stores a module value under name.
func (s *State) AddModule(name string, m any) *State {
	s.modules[name] = m
	return s
}

// CallHookFromBackwardState resolves hookName on state and invokes it with
// args. A name that does not resolve fails with a hook not_found error; the
// failure is never caught here.
func CallHookFromBackwardState(state *State, hookName string, args ...any) (any, error) {
	h, ok := state.hooks[hookName]
	if !ok {
		return nil, errors.HookNotFound("hook", hookName)
	}
	return h(args...)
}

// CallModuleHooksFromBackwardState resolves an ordered hook list and a
// module on state, then threads result through each hook in stored order,
// replacing it whenever a hook returns a non-nil value.
func CallModuleHooksFromBackwardState(state *State, hooksName, moduleName string, result any, args ...any) (any, error) {
	module, ok := state.modules[moduleName]
	if !ok {
		return nil, errors.HookNotFound("module", moduleName)
	}
	hs, ok := state.hookLists[hooksName]
	if !ok {
		return nil, errors.HookNotFound("hook list", hooksName)
	}

	for _, h := range hs {
		next, err := h(module, result, args...)
		if err != nil {
			return nil, err
		}
		if next != nil {
			result = next
		}
	}
	return result, nil
}
