// SPDX-License-Identifier: MIT

package fraction

import (
	"math/big"
	"strings"
)

const (
	tokenSep   = "/" // numerator/denominator separator
	tokenMinus = '-' // optional leading sign of the numerator
)

// Parse reads a token of the form "[-]digits" or "[-]digits/digits".
// Implementation:
//   - Stage 1: trim surrounding whitespace; split once on "/".
//   - Stage 2: validate each side against the grammar; the first failing side
//     is reported as the offending substring.
//   - Stage 3: build the reduced value; a zero denominator is ErrDivisionByZero.
//
// Errors:
//   - *ParseError (errors.Is(err, ErrParse)) for any grammar violation,
//     including "+1", "1.5", "1/-2", "1/2/3" and "".
//   - ErrDivisionByZero for "n/0".
//
// Complexity:
//   - Time O(len(token)).
func Parse(token string) (Fraction, error) {
	tok := strings.TrimSpace(token)
	numPart, denPart, hasDen := strings.Cut(tok, tokenSep)

	if !isSignedDigits(numPart) {
		if numPart == "" {
			return Fraction{}, &ParseError{Token: tok}
		}
		return Fraction{}, &ParseError{Token: numPart}
	}
	num, _ := new(big.Int).SetString(numPart, 10)
	if !hasDen {
		return Fraction{r: new(big.Rat).SetInt(num)}, nil
	}

	if !isDigits(denPart) {
		if denPart == "" {
			return Fraction{}, &ParseError{Token: tok}
		}
		return Fraction{}, &ParseError{Token: denPart}
	}
	den, _ := new(big.Int).SetString(denPart, 10)

	return NewBig(num, den)
}

// MustParse is Parse for fixtures; it panics on error.
func MustParse(token string) Fraction {
	f, err := Parse(token)
	if err != nil {
		panic(err)
	}

	return f
}

// isSignedDigits reports s ∈ [-]digits.
func isSignedDigits(s string) bool {
	if len(s) > 0 && s[0] == tokenMinus {
		s = s[1:]
	}

	return isDigits(s)
}

// isDigits reports s ∈ digits (ASCII, at least one).
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
