// Package fuzzy implements discrete fuzzy sets in vector notation: each
// element pairs a membership value in [0, 1] with the element it grades.
// Binary operations combine sets element-wise, so both operands must list
// their elements in the same order.
package fuzzy

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

// ErrLengthMismatch is returned by binary operations on sets of differing
// lengths.
var ErrLengthMismatch = errors.New("the two sets have differing lengths")

// ErrZeroMembership is returned when defuzzifying a set whose memberships
// sum to zero.
var ErrZeroMembership = errors.New("set has zero total membership")

// Memberships produced by Complement are rounded to this many decimal places.
const decimalPlaces = 2

// Element is one graded element of a discrete fuzzy set,
// <membership>/<element> in the usual vector notation.
type Element struct {
	Membership float64
	Value      float64
}

// Set is a discrete fuzzy set. Element order is significant for the binary
// operations.
type Set []Element

func round(x float64) float64 {
	shift := math.Pow(10, decimalPlaces)
	return math.Round(x*shift) / shift
}

// Complement inverts every membership value (1 - μ).
func (s Set) Complement() Set {
	out := make(Set, len(s))
	for i, e := range s {
		out[i] = Element{Membership: round(1 - e.Membership), Value: e.Value}
	}
	return out
}

// And combines two sets with the element-wise minimum of memberships.
func (s Set) And(other Set) (Set, error) {
	if len(s) != len(other) {
		return nil, ErrLengthMismatch
	}
	out := make(Set, len(s))
	for i, e := range s {
		out[i] = Element{Membership: math.Min(e.Membership, other[i].Membership), Value: e.Value}
	}
	return out, nil
}

// Or combines two sets with the element-wise maximum of memberships.
func (s Set) Or(other Set) (Set, error) {
	if len(s) != len(other) {
		return nil, ErrLengthMismatch
	}
	out := make(Set, len(s))
	for i, e := range s {
		out[i] = Element{Membership: math.Max(e.Membership, other[i].Membership), Value: e.Value}
	}
	return out, nil
}

// Chop caps every membership value at limit.
func (s Set) Chop(limit float64) Set {
	out := make(Set, len(s))
	for i, e := range s {
		out[i] = Element{Membership: math.Min(e.Membership, limit), Value: e.Value}
	}
	return out
}

// CentreOfGravity defuzzifies the set: Σ(μᵢ·vᵢ) / Σμᵢ.
func (s Set) CentreOfGravity() (float64, error) {
	var products, memberships float64
	for _, e := range s {
		products += e.Membership * e.Value
		memberships += e.Membership
	}
	if memberships == 0 {
		return 0, ErrZeroMembership
	}
	return products / memberships, nil
}

// CentreOfGravitySum renders the centre-of-gravity calculation as its
// written-out sum, e.g. "((0.5 * 2) + (1 * 4)) / (0.5 + 1)".
func (s Set) CentreOfGravitySum() string {
	products := make([]string, len(s))
	memberships := make([]string, len(s))
	for i, e := range s {
		products[i] = fmt.Sprintf("(%v * %v)", e.Membership, e.Value)
		memberships[i] = fmt.Sprintf("%v", e.Membership)
	}
	return "(" + strings.Join(products, " + ") + ") / (" + strings.Join(memberships, " + ") + ")"
}

// Membership returns the membership value graded for the given element, and
// whether the element is present in the set.
func (s Set) Membership(value float64) (float64, bool) {
	for _, e := range s {
		if e.Value == value {
			return e.Membership, true
		}
	}
	return 0, false
}

// String renders the set sorted by element value, e.g. "[(0.4, 2), (0.8, 3)]".
func (s Set) String() string {
	sorted := make(Set, len(s))
	copy(sorted, s)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Value < sorted[j].Value })

	parts := make([]string, len(sorted))
	for i, e := range sorted {
		parts[i] = fmt.Sprintf("(%v, %v)", e.Membership, e.Value)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
