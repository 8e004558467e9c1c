package braid

import "strings"

// Len returns the number of twists in w.
func (w Word) Len() int {
	return len(w.twists)
}

// Last returns the final twist; ok is false for the identity word.
func (w Word) Last() (t Twist, ok bool) {
	if len(w.twists) == 0 {
		return 0, false
	}
	return w.twists[len(w.twists)-1], true
}

// Twists returns a copy of the twists of w.
func (w Word) Twists() []Twist {
	return append([]Twist(nil), w.twists...)
}

// Equal reports whether w and v are the same sequence of twists.
func (w Word) Equal(v Word) bool {
	if len(w.twists) != len(v.twists) {
		return false
	}
	for i := range w.twists {
		if w.twists[i] != v.twists[i] {
			return false
		}
	}
	return true
}

// EndsWith reports whether the trailing len(suffix) twists of w equal suffix.
func (w Word) EndsWith(suffix ...Twist) bool {
	n, m := len(w.twists), len(suffix)
	if n < m {
		return false
	}
	for i := 1; i <= m; i++ {
		if w.twists[n-i] != suffix[m-i] {
			return false
		}
	}
	return true
}

// Append returns w followed by t. The result owns a fresh backing array, so
// sibling words appended to the same parent never share storage.
func (w Word) Append(t Twist) Word {
	twists := make([]Twist, len(w.twists)+1)
	copy(twists, w.twists)
	twists[len(w.twists)] = t
	return Word{twists: twists}
}

// Mirror returns w with every twist replaced by its inverse, i.e. the braid
// whose closure is the mirror image of the closure of w.
func (w Word) Mirror() Word {
	twists := make([]Twist, len(w.twists))
	for i, t := range w.twists {
		twists[i] = t.Inverse()
	}
	return Word{twists: twists}
}

// Writhe returns the signed crossing count of w.
func (w Word) Writhe() int64 {
	var s int64
	for _, t := range w.twists {
		s += t.Sign()
	}
	return s
}

// String renders w as space separated twists, or "1" for the identity.
func (w Word) String() string {
	if len(w.twists) == 0 {
		return "1"
	}
	names := make([]string, len(w.twists))
	for i, t := range w.twists {
		names[i] = t.String()
	}
	return strings.Join(names, " ")
}

// ParseWord parses the String form of a word. Fields are separated by
// whitespace; "1" or an empty string denote the identity.
func ParseWord(s string) (Word, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 || (len(fields) == 1 && fields[0] == "1") {
		return Identity(), nil
	}
	twists := make([]Twist, len(fields))
	for i, f := range fields {
		t, err := ParseTwist(f)
		if err != nil {
			return Word{}, err
		}
		twists[i] = t
	}
	return Word{twists: twists}, nil
}
