package engine

import (
	"errors"
	"fmt"

	"github.com/samdwyer/horizon/internal/ecs"
)

// ErrInvariant marks a corrupted world. A turn that hits it is abandoned
// without applying any of its changes.
var ErrInvariant = errors.New("world invariant violated")

func invariantf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvariant, fmt.Sprintf(format, args...))
}

func missingComponent(id ecs.EntityID, what string) error {
	return invariantf("actor %d has no %s", id, what)
}
