// SPDX-License-Identifier: MIT

package recycle

import "errors"

var (
	// ErrUnsupported is returned for a source/destination type pair Into
	// does not convert (complex or integer64 into character, anything but a
	// list into a list, non-atomic sources into atomic destinations).
	ErrUnsupported = errors.New("recycle: unsupported coercion")

	// ErrShortSource is returned when the source holds fewer than srcStart+n
	// values and is not a broadcastable length-1 vector.
	ErrShortSource = errors.New("recycle: source too short")

	// ErrOutOfRange is returned when the destination window exceeds dst.
	ErrOutOfRange = errors.New("recycle: destination window out of range")
)
