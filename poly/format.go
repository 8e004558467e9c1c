package poly

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	textPrefix = "P(t) = "
	termSep    = "  +  "
	termMid    = " * t^"
)

// String renders p as "P(t) = c * t^e  +  c * t^e ..." by ascending
// exponent, omitting zero coefficients. The zero polynomial renders as "P(t) = ".
func (p Poly) String() string {
	var sb strings.Builder
	sb.WriteString(textPrefix)
	for i, t := range p.Terms() {
		if i > 0 {
			sb.WriteString(termSep)
		}
		sb.WriteString(strconv.FormatInt(t.Coef, 10))
		sb.WriteString(termMid)
		sb.WriteString(strconv.FormatInt(t.Exp, 10))
	}
	return sb.String()
}

// Parse is the inverse of Poly.String.
func Parse(s string) (Poly, error) {
	body, ok := strings.CutPrefix(s, textPrefix)
	if !ok {
		return Poly{}, fmt.Errorf("%w: missing %q prefix in %q", ErrBadFormat, textPrefix, s)
	}
	p := Zero()
	if body == "" {
		return p, nil
	}
	for _, term := range strings.Split(body, termSep) {
		coefText, expText, found := strings.Cut(term, termMid)
		if !found {
			return Poly{}, fmt.Errorf("%w: bad term %q", ErrBadFormat, term)
		}
		coef, err := strconv.ParseInt(coefText, 10, 64)
		if err != nil {
			return Poly{}, fmt.Errorf("%w: coefficient %q: %v", ErrBadFormat, coefText, err)
		}
		exp, err := strconv.ParseInt(expText, 10, 64)
		if err != nil {
			return Poly{}, fmt.Errorf("%w: exponent %q: %v", ErrBadFormat, expText, err)
		}
		p.coefs[exp] += coef
	}
	return p, nil
}
