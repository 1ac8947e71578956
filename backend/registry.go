package backend

import (
	"fmt"
	"sync"
)

// Supported backend names.
const (
	DenseName = "dense"
	DualName  = "dual"
)

var (
	mu         sync.RWMutex
	active     Ops
	activeName string
)

// Select makes the named backend the active substrate for all subsequent
// problem constructions. An unknown name returns ErrUnsupported and leaves
// any prior selection untouched. Reselecting the current name is a no-op.
func Select(name string) error {
	ops, err := lookup(name)
	if err != nil {
		return err
	}

	mu.Lock()
	active = ops
	activeName = name
	mu.Unlock()
	return nil
}

// Active returns the currently selected substrate. It returns
// ErrUnselected if Select has never succeeded.
func Active() (Ops, error) {
	mu.RLock()
	defer mu.RUnlock()
	if active == nil {
		return nil, ErrUnselected
	}
	return active, nil
}

// Name reports the identifier of the active backend.
func Name() (string, error) {
	mu.RLock()
	defer mu.RUnlock()
	if active == nil {
		return "", ErrUnselected
	}
	return activeName, nil
}

// Names lists the supported backend identifiers.
func Names() []string {
	return []string{DenseName, DualName}
}

// Dense returns the eager gonum-backed substrate, independent of the
// process-wide selection. Useful for explicit injection.
func Dense() Ops { return denseOps{} }

// Dual returns the forward-mode differentiable substrate, independent of
// the process-wide selection.
func Dual() Ops { return dualOps{} }

func lookup(name string) (Ops, error) {
	switch name {
	case DenseName:
		return denseOps{}, nil
	case DualName:
		return dualOps{}, nil
	}
	return nil, fmt.Errorf("%w: %q (supported: %v)", ErrUnsupported, name, Names())
}
