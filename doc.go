/*
Package kleene implements Kleene's strong three-valued logic (K3) as a single
immutable value type with algebraic operators, text parsing/formatting and a
JSON encoding.

It is for code that must represent "true / false / not yet known" without
collapsing the unknown case into false, as a nullable bool forces you to do.

# Concept

TriState encodes its three values as -1/0/+1, and that encoding is also the
total order False < Unknown < True. The K3 operators fall out of it: Not is
negation, And is min, Or is max. Unknown degrades gracefully — a result is
definite only when the definite operands already decide it, so
True.And(Unknown) is Unknown but False.And(Unknown) is False.

# Key Features

  - Closed value set: three constants, clamp-on-construct at the raw-integer
    boundary, no fourth state.
  - K3 operators (Not/And/Or/Xor) plus short-circuit combinators
    (AndThen/OrElse) where only definitive knowledge prunes evaluation.
  - Explicit truthiness: IsTrue and IsFalse are separate guards and Unknown
    satisfies neither, so control flow never silently conflates Unknown
    with False.
  - Text contract: formats as exactly "True"/"False"/"Unknown"; parses those
    words case-insensitively plus the exact numerals "1"/"0"/"-1".
  - Codecs: JSON and YAML decoders accept booleans, null, strings and
    integers in range, while encoding always emits the canonical string.
  - Interop: lossless optional-bool round trip (nil ↔ Unknown), a raw
    integer accessor, and a mapstructure decode hook for config structs.

# Usage

	package main

	import (
		"fmt"

		"github.com/aretw0/kleene"
	)

	func main() {
		// A health probe that has not reported yet is neither up nor down.
		probe := kleene.Unknown

		// False dominates And; True dominates Or; Unknown survives both.
		ok := kleene.True.And(probe)
		fmt.Println(ok) // Unknown

		// Branch on definite knowledge only.
		switch {
		case ok.IsTrue():
			fmt.Println("healthy")
		case ok.IsFalse():
			fmt.Println("down")
		default:
			fmt.Println("still waiting")
		}

		// Collapse explicitly when a two-valued answer is required.
		fmt.Println(ok.ToBool(false))
	}

Every operation is a pure, synchronous computation over a tiny value: no
allocation on the operator paths, no locking, no I/O. The codecs hold no
state between calls.
*/
package kleene
