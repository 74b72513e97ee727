package kleene

import "log/slog"

// TriState is a truth value in Kleene's strong three-valued logic (K3):
// False, Unknown or True.
//
// It exists for code that must carry "not yet known" through boolean
// algebra without collapsing it into false the way a nullable bool does.
// Unknown degrades gracefully: a result is definite only when the definite
// operands already determine it (False dominates And, True dominates Or).
//
// TriState is a plain value. It is comparable, immutable and safe to share
// between goroutines without synchronization; every holder owns its own
// copy.
//
// The underlying encoding is -1/0/+1 and doubles as the total order
// False < Unknown < True, which makes And/Or exactly min/max. Keep raw
// integers at interop boundaries and go through FromRaw, which clamps out
// of range input instead of producing a fourth state.
type TriState int8

// The three canonical values. Every TriState produced by this package is
// equal to exactly one of them.
const (
	False   TriState = -1
	Unknown TriState = 0
	True    TriState = 1
)

// FromRaw converts a raw integer encoding into a TriState, clamping into
// [-1, 1]. It never fails: anything below -1 is False, anything above 1 is
// True. This is the low-friction boundary for values arriving from storage
// or foreign code.
func FromRaw(n int) TriState {
	switch {
	case n < -1:
		return False
	case n > 1:
		return True
	}
	return TriState(n)
}

// FromBool lifts a two-valued bool into the definite subset.
func FromBool(b bool) TriState {
	if b {
		return True
	}
	return False
}

// FromBoolPtr converts an optional bool: nil maps to Unknown, anything else
// delegates to FromBool. It is the exact inverse of BoolPtr.
func FromBoolPtr(p *bool) TriState {
	if p == nil {
		return Unknown
	}
	return FromBool(*p)
}

// BoolPtr projects the value back onto an optional bool: Unknown yields
// nil, the definite values yield a pointer to true or false. Round-trips
// with FromBoolPtr losslessly.
func (t TriState) BoolPtr() *bool {
	if t == Unknown {
		return nil
	}
	b := t == True
	return &b
}

// Int exposes the raw -1/0/+1 encoding for interop with external storage
// or foreign-function boundaries.
func (t TriState) Int() int {
	return int(t)
}

// IsTrue reports whether the value is definitely True. Unknown does NOT
// satisfy it.
//
// Note the branching consequence: an if/else built from this single guard
// merges Unknown into the else arm together with False. When the Unknown
// case matters, switch over the three constants or pair IsTrue with
// IsFalse — conflating Unknown with False is exactly what this type is
// here to prevent.
func (t TriState) IsTrue() bool {
	return t == True
}

// IsFalse reports whether the value is definitely False. Unknown does NOT
// satisfy it; see the branching note on IsTrue.
func (t TriState) IsFalse() bool {
	return t == False
}

// IsUnknown reports whether the value is Unknown.
func (t TriState) IsUnknown() bool {
	return t == Unknown
}

// IsDefinite reports whether the value is True or False.
func (t TriState) IsDefinite() bool {
	return t != Unknown
}

// Not returns the K3 negation: the negated encoding. It is an involution,
// so x.Not().Not() == x, and Unknown stays Unknown.
func (t TriState) Not() TriState {
	return -t
}

// And returns the K3 conjunction: the minimum under False < Unknown < True.
// False dominates regardless of the other operand; True is the identity.
func (t TriState) And(o TriState) TriState {
	if o < t {
		return o
	}
	return t
}

// Or returns the K3 disjunction: the maximum under False < Unknown < True.
// True dominates regardless of the other operand; False is the identity.
func (t TriState) Or(o TriState) TriState {
	if o > t {
		return o
	}
	return t
}

// Xor returns the exclusive or, lifted as the negated product of the
// encodings: boolean XOR on the definite subset, and Unknown whenever
// either operand is Unknown.
//
// This lift is a deliberate contract, not the only plausible three-valued
// XOR. Unknown always propagates; callers relying on a definite result
// must resolve their inputs first.
func (t TriState) Xor(o TriState) TriState {
	return -(t * o)
}

// Else returns the value itself when it is definite, and fallback only
// when it is Unknown. Together with ToBool it is the sanctioned, explicit
// way to collapse uncertainty.
func (t TriState) Else(fallback TriState) TriState {
	if t == Unknown {
		return fallback
	}
	return t
}

// ToBool collapses to a plain bool, substituting fallback for Unknown.
func (t TriState) ToBool(fallback bool) bool {
	if t == Unknown {
		return fallback
	}
	return t == True
}

// Compare orders two values along False < Unknown < True, returning -1, 0
// or +1 in the usual way.
func (t TriState) Compare(o TriState) int {
	switch {
	case t < o:
		return -1
	case t > o:
		return 1
	}
	return 0
}

// LogValue implements slog.LogValuer, logging the canonical word.
func (t TriState) LogValue() slog.Value {
	return slog.StringValue(t.String())
}
