package hooks

// Hook is a user callback of unconstrained arity. A nil result means the
// hook declined to override.
type Hook func(args ...any) (any, error)

// CallHook invokes hook with args and applies the autograd convention for a
// declining hook: a nil result propagates the first argument unchanged.
func CallHook(hook Hook, args ...any) (any, error) {
	result, err := hook(args...)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return args[0], nil
	}
	return result, nil
}
