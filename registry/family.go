package registry

import (
	"github.com/typeforge/dynrec/shared"
)

// RegisterFamily registers T together with the fixed set of wrapper and
// collection forms derived from it, sparing callers from enumerating
// every container form of a base type by hand.
//
// The derived set is generative and explicit, not reflective: the base
// forms are T, *T, shared.Shared[T], shared.Shared[shared.Locked[T]],
// and shared.Shared[shared.RWLocked[T]]; each base form X additionally
// contributes []X, shared.Shared[[]X], shared.Locked[[]X],
// shared.RWLocked[[]X], shared.Locked[[]*X], and shared.RWLocked[[]*X].
func RegisterFamily[T any](r *Registry) {
	registerForms[T](r)
	registerForms[*T](r)
	registerForms[shared.Shared[T]](r)
	registerForms[shared.Shared[shared.Locked[T]]](r)
	registerForms[shared.Shared[shared.RWLocked[T]]](r)
}

func registerForms[X any](r *Registry) {
	Register[X](r)
	Register[[]X](r)
	Register[shared.Shared[[]X]](r)
	Register[shared.Locked[[]X]](r)
	Register[shared.RWLocked[[]X]](r)
	Register[shared.Locked[[]*X]](r)
	Register[shared.RWLocked[[]*X]](r)
}
