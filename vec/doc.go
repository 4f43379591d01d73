// Package vec models typed, attribute-carrying vectors: the columns of a
// table and the flat buffer behind a matrix.
//
// What is here?
//
//	• Type and its promotion lattice (Rank, IsAtomic, IsVector)
//	• concrete vectors: Raw, Logical, Integer, Double, Complex, Character,
//	  List, PairList, Expression and the non-vector Language value
//	• missing-value sentinels per type (NALogical, NAInteger, NADouble, NAChar)
//	• integer64: a 64-bit integer stored in a Double slot, tagged by class
//	• coercions a bulk copy cannot express (AsList, AsCharacter, Scalar)
//
// Usage:
//
//	import "github.com/katalvlaran/tabmat/vec"
//
//	ids := vec.NewInteger64(10, vec.NAInteger64)
//	txt, _ := vec.AsCharacter(ids) // ["10", NA]
//
// Vectors are plain data; none of the types are safe for concurrent mutation.
package vec
