package kleene

// Short-circuit combinators. Go's && and || are closed to overloading, so
// laziness is spelled out with operand funcs instead.
//
// The pruning rule is strict: only definitive knowledge skips an operand.
// False prunes And, True prunes Or — Unknown never does, because skipping
// on Unknown could hide a side effect that would have resolved the
// uncertainty.

// AndThen is a lazy And. When t is definitely False the operand func is
// not invoked and the result is False; otherwise f runs exactly once and
// the result is t.And(f()).
func (t TriState) AndThen(f func() TriState) TriState {
	if t == False {
		return False
	}
	return t.And(f())
}

// OrElse is a lazy Or. When t is definitely True the operand func is not
// invoked and the result is True; otherwise f runs exactly once and the
// result is t.Or(f()).
func (t TriState) OrElse(f func() TriState) TriState {
	if t == True {
		return True
	}
	return t.Or(f())
}

// AndAll folds AndThen over the operands left to right, evaluating each
// only while the accumulated result is not False.
func AndAll(first TriState, rest ...func() TriState) TriState {
	acc := first
	for _, f := range rest {
		if acc == False {
			return False
		}
		acc = acc.And(f())
	}
	return acc
}

// OrAny folds OrElse over the operands left to right, evaluating each only
// while the accumulated result is not True.
func OrAny(first TriState, rest ...func() TriState) TriState {
	acc := first
	for _, f := range rest {
		if acc == True {
			return True
		}
		acc = acc.Or(f())
	}
	return acc
}
