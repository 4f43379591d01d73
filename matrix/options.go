// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the table → matrix conversion.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies them in order.
//
// Design goals:
//   - Deterministic behavior: no global state besides the documented defaults.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Row-label options (WithRowNames, WithRowNamesColumn, WithRowNamesIndex)
//     are read by Convert only; AsMatrix takes its row labels explicitly.
//   - A column-based row-label option wins over WithRowNames.
package matrix

import "log/slog"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRetainInteger64Class controls whether the "integer64" class stays
	// on the returned buffer. false ⇒ the buffer's natural class is restored
	// after filling and integer64 survives only as IsWideInteger().
	DefaultRetainInteger64Class = false

	// noRowNamesIndex marks "no row-label column selected by index".
	noRowNamesIndex = -1
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicFillerNil         = "matrix: WithFiller: filler must be non-nil"
	panicWarningHandlerNil = "matrix: WithWarningHandler: handler must be non-nil"
	panicLoggerNil         = "matrix: WithLogger: logger must be non-nil"
	panicRowNamesColumn    = "matrix: WithRowNamesColumn: name must be non-empty"
	panicRowNamesIndex     = "matrix: WithRowNamesIndex: index must be >= 0"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	// collaborators
	filler    Filler        // RecycleFiller
	onWarning func(Warning) // nil ⇒ warnings are only logged
	logger    *slog.Logger  // discard by default

	// output policy
	retainInteger64 bool // DefaultRetainInteger64Class

	// row labels (Convert only)
	rowNames      []string // explicit labels; nil ⇒ none
	rowNamesCol   string   // column name providing labels; "" ⇒ none
	rowNamesIndex int      // column index providing labels; noRowNamesIndex ⇒ none
}

// ---------- Constructors (WithX) ----------

// WithFiller replaces the fill utility used by column materialization.
//
// Behavior highlights:
//   - The Filler is called once per column with the (possibly pre-coerced)
//     column and the column's window of the destination buffer.
//
// Errors:
//   - Panics with a stable message when f is nil.
//
// AI-Hints:
//   - Wrap RecycleFiller in a FillerFunc to observe or fault-inject fills in tests.
func WithFiller(f Filler) Option {
	if f == nil {
		panic(panicFillerNil)
	}

	return func(o *Options) { o.filler = f }
}

// WithWarningHandler registers fn to receive precision-loss warnings.
// Warnings are also logged at WARN level regardless of the handler.
func WithWarningHandler(fn func(Warning)) Option {
	if fn == nil {
		panic(panicWarningHandlerNil)
	}

	return func(o *Options) { o.onWarning = fn }
}

// WithLogger sets the structured logger (default discards everything).
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// WithRetainInteger64Class keeps the "integer64" class on the returned
// buffer of an integer64 matrix instead of restoring its natural class.
func WithRetainInteger64Class() Option {
	return func(o *Options) { o.retainInteger64 = true }
}

// WithRowNames sets explicit row labels (copied). Their length must equal
// the table's row count; Convert returns ErrDimensionMismatch otherwise.
func WithRowNames(labels []string) Option {
	cp := append([]string(nil), labels...)

	return func(o *Options) { o.rowNames = cp }
}

// WithRowNamesColumn takes the row labels from the named column, which is
// then dropped from the converted data.
func WithRowNamesColumn(name string) Option {
	if name == "" {
		panic(panicRowNamesColumn)
	}

	return func(o *Options) {
		o.rowNamesCol = name
		o.rowNamesIndex = noRowNamesIndex
	}
}

// WithRowNamesIndex takes the row labels from column j (0-based), which is
// then dropped from the converted data.
func WithRowNamesIndex(j int) Option {
	if j < 0 {
		panic(panicRowNamesIndex)
	}

	return func(o *Options) {
		o.rowNamesIndex = j
		o.rowNamesCol = ""
	}
}

// gatherOptions applies user options over the documented defaults.
// Last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		filler:          RecycleFiller,
		logger:          slog.New(slog.DiscardHandler),
		retainInteger64: DefaultRetainInteger64Class,
		rowNamesIndex:   noRowNamesIndex,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

// warn delivers w to the handler (if any) and logs it.
func (o *Options) warn(w Warning) {
	o.logger.Warn("precision lost while filling matrix", "column", w.Column, "message", w.Message)
	if o.onWarning != nil {
		o.onWarning(w)
	}
}
