// SPDX-License-Identifier: MIT

package vec

import "errors"

// Sentinel errors of the vec package. Wrap with fmt.Errorf("ctx: %w", ErrX)
// at the detection site; callers match with errors.Is.
var (
	// ErrUnknownType is returned for a type name or code outside the lattice.
	ErrUnknownType = errors.New("vec: unknown type")

	// ErrUnsupportedCoercion signals a conversion that has no defined result
	// (e.g. a List into Integer).
	ErrUnsupportedCoercion = errors.New("vec: unsupported coercion")

	// ErrOutOfRange indicates an element index outside [0, Len()).
	ErrOutOfRange = errors.New("vec: index out of range")
)
