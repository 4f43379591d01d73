// SPDX-License-Identifier: MIT

// Package tableio - YAML table fixtures.
//
// A fixture lists columns in order; each column has a name, a type and its
// values. null is the missing value of the column type:
//
//	columns:
//	  - name: id
//	    type: integer64
//	    values: [10, null]
//	  - name: z
//	    type: complex
//	    values: ["1+2i", null]
//	  - name: cells
//	    type: list
//	    values:
//	      - {type: integer, values: [1, 2]}
//	      - null
//	  - name: call
//	    type: language
//	    expr: f(x)
//
// list, pairlist and expression values are nested column specs (their name
// is ignored). A language column carries expr instead of values.

package tableio

import (
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tabmat/table"
	"github.com/katalvlaran/tabmat/vec"
)

// typeInteger64 names the wide-integer logical type in fixtures.
const typeInteger64 = vec.ClassInteger64

type fixture struct {
	Columns []columnSpec `yaml:"columns"`
}

type columnSpec struct {
	Name   string      `yaml:"name"`
	Type   string      `yaml:"type"`
	Values []yaml.Node `yaml:"values"`
	Expr   string      `yaml:"expr"`
}

// ReadYAML decodes a fixture into a table.
//
// Errors: ErrBadFixture (wrapped with the column and value position),
// table construction errors.
func ReadYAML(r io.Reader) (*table.Table, error) {
	var fx fixture
	if err := yaml.NewDecoder(r).Decode(&fx); err != nil {
		return nil, fmt.Errorf("tableio: ReadYAML: %v: %w", err, ErrBadFixture)
	}
	names := make([]string, len(fx.Columns))
	cols := make([]vec.Vector, len(fx.Columns))
	for j, spec := range fx.Columns {
		col, err := spec.vector()
		if err != nil {
			return nil, fmt.Errorf("tableio: ReadYAML: column %d (%q): %w", j+1, spec.Name, err)
		}
		names[j], cols[j] = spec.Name, col
	}

	return table.New(names, cols...)
}

// vector builds the column described by s.
func (s columnSpec) vector() (vec.Vector, error) {
	if s.Type == typeInteger64 {
		vals, err := decodeAll(s.Values, vec.NAInteger64, func(n *yaml.Node) (int64, error) {
			return strconv.ParseInt(n.Value, 10, 64)
		})
		return vec.NewInteger64(vals...), err
	}
	t, err := vec.ParseType(s.Type)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrBadFixture)
	}

	switch t {
	case vec.TypeRaw:
		vals, err := decodeAll(s.Values, 0, func(n *yaml.Node) (byte, error) {
			x, err := strconv.ParseUint(n.Value, 0, 8)
			return byte(x), err
		})
		return vec.NewRaw(vals...), err
	case vec.TypeLogical:
		vals, err := decodeAll(s.Values, vec.NALogical, func(n *yaml.Node) (int32, error) {
			var b bool
			if err := n.Decode(&b); err != nil {
				return 0, err
			}
			if b {
				return vec.True, nil
			}
			return vec.False, nil
		})
		return vec.NewLogical(vals...), err
	case vec.TypeInteger:
		vals, err := decodeAll(s.Values, vec.NAInteger, func(n *yaml.Node) (int32, error) {
			x, err := strconv.ParseInt(n.Value, 10, 32)
			return int32(x), err
		})
		return vec.NewInteger(vals...), err
	case vec.TypeDouble:
		vals, err := decodeAll(s.Values, vec.NADouble, func(n *yaml.Node) (float64, error) {
			var x float64
			err := n.Decode(&x)
			return x, err
		})
		return vec.NewDouble(vals...), err
	case vec.TypeComplex:
		vals, err := decodeAll(s.Values, vec.NAComplex, func(n *yaml.Node) (complex128, error) {
			return strconv.ParseComplex(n.Value, 128)
		})
		return vec.NewComplex(vals...), err
	case vec.TypeCharacter:
		vals, err := decodeAll(s.Values, vec.NAChar, func(n *yaml.Node) (vec.Char, error) {
			return vec.Str(n.Value), nil
		})
		return vec.NewCharacter(vals...), err
	case vec.TypeList, vec.TypePairList, vec.TypeExpression:
		elems, err := decodeAll(s.Values, nil, func(n *yaml.Node) (vec.Vector, error) {
			var inner columnSpec
			if err := n.Decode(&inner); err != nil {
				return nil, err
			}
			return inner.vector()
		})
		if err != nil {
			return nil, err
		}
		switch t {
		case vec.TypePairList:
			return vec.NewPairList(elems...), nil
		case vec.TypeExpression:
			return vec.NewExpression(elems...), nil
		default:
			return vec.NewList(elems...), nil
		}
	case vec.TypeLanguage:
		if s.Expr == "" {
			return nil, fmt.Errorf("language column without expr: %w", ErrBadFixture)
		}
		return vec.NewLanguage(s.Expr), nil
	default:
		return nil, fmt.Errorf("type %s: %w", t, ErrBadFixture)
	}
}

// decodeAll maps every node through parse, using na for null nodes.
func decodeAll[E any](nodes []yaml.Node, na E, parse func(*yaml.Node) (E, error)) ([]E, error) {
	out := make([]E, len(nodes))
	for i := range nodes {
		n := &nodes[i]
		if n.Tag == "!!null" {
			out[i] = na
			continue
		}
		v, err := parse(n)
		if err != nil {
			return nil, fmt.Errorf("value %d (line %d): %v: %w", i+1, n.Line, err, ErrBadFixture)
		}
		out[i] = v
	}

	return out, nil
}
