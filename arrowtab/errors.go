// SPDX-License-Identifier: MIT

package arrowtab

import "errors"

var (
	// ErrUnsupportedType indicates an Arrow column type with no vec counterpart.
	ErrUnsupportedType = errors.New("arrowtab: unsupported arrow type")

	// ErrNilInput indicates a nil record, table or reader.
	ErrNilInput = errors.New("arrowtab: nil input")
)
