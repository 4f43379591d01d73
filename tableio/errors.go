// SPDX-License-Identifier: MIT

package tableio

import "errors"

var (
	// ErrUnknownFormat indicates a file extension no loader handles.
	ErrUnknownFormat = errors.New("tableio: unknown file format")

	// ErrBadFixture indicates a YAML fixture that does not describe a table.
	ErrBadFixture = errors.New("tableio: malformed fixture")
)
