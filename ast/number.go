// Copyright (C) 2026 vincentzreo. All Rights Reserved.

package ast

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vincentzreo/gammar"
)

// ParseNumber converts the text of a numeric literal to its Number
// value: an optional leading minus sign, one or more decimal digits,
// and an optional fractional part introduced by a decimal point. The
// result is a Float exactly when a fractional part is present,
// otherwise an Int; the sign applies to the final value either way.
//
// The caller is responsible for the shape of the literal; ParseNumber
// reports an error wrapping gammar.ErrInvalidNumber only when the
// digits cannot be converted to the target representation. Note that
// the digits of an integer literal are converted before the sign is
// applied, so the most negative int64 is out of range.
func ParseNumber(lit string) (Number, error) {
	text, neg := strings.CutPrefix(lit, "-")
	intPart, fracPart, isFloat := strings.Cut(text, ".")
	if !isFloat {
		z, err := strconv.ParseInt(intPart, 10, 64)
		if err != nil {
			return nil, numErr(lit, err)
		}
		if neg {
			z = -z
		}
		return Int(z), nil
	}
	f, err := strconv.ParseFloat(intPart+"."+fracPart, 64)
	if err != nil {
		return nil, numErr(lit, err)
	}
	if neg {
		f = -f
	}
	return Float(f), nil
}

func numErr(lit string, err error) error {
	var nerr *strconv.NumError
	if errors.As(err, &nerr) {
		err = nerr.Err // drop the redundant strconv prefix
	}
	return fmt.Errorf("%w %q: %v", gammar.ErrInvalidNumber, lit, err)
}
