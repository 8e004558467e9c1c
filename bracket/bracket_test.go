package bracket_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/b3jones/braid"
	"github.com/katalvlaran/b3jones/bracket"
	"github.com/katalvlaran/b3jones/poly"
)

func mustParse(t *testing.T, s string) poly.Poly {
	t.Helper()
	p, err := poly.Parse(s)
	require.NoError(t, err)
	return p
}

func mustWord(t *testing.T, s string) braid.Word {
	t.Helper()
	w, err := braid.ParseWord(s)
	require.NoError(t, err)
	return w
}

// EngineSuite covers the recurrence under the default ParitySign mode.
type EngineSuite struct {
	suite.Suite
	eng *bracket.Engine
}

func (s *EngineSuite) SetupTest() {
	eng, err := bracket.NewEngine()
	require.NoError(s.T(), err)
	s.eng = eng
}

// TestIdentity checks the base case (U³, U², U², U, U) and its Jones polynomial.
func (s *EngineSuite) TestIdentity() {
	u := bracket.Unknot()
	u2 := u.Mul(u)
	u3 := u2.Mul(u)

	id := s.eng.Identity()
	require.Equal(s.T(), 0, id.Word.Len())
	require.Equal(s.T(), int64(0), id.Writhe)
	require.True(s.T(), id.A.Equal(u3))
	require.True(s.T(), id.B.Equal(u2))
	require.True(s.T(), id.C.Equal(u2))
	require.True(s.T(), id.D.Equal(u))
	require.True(s.T(), id.E.Equal(u))
	require.True(s.T(), id.Jones.Equal(u3), "writhe 0 correction is the constant 1")
	require.Equal(s.T(), int64(0), id.Jones.Coef(0))
}

// TestStepA pins all five brackets after one positive A twist.
func (s *EngineSuite) TestStepA() {
	a := s.eng.Step(s.eng.Identity(), braid.A)
	require.Equal(s.T(), "A", a.Word.String())
	require.Equal(s.T(), int64(1), a.Writhe)
	require.Equal(s.T(), "P(t) = -1 * t^-1  +  -2 * t^3  +  -1 * t^7", a.A.String())
	require.Equal(s.T(), "P(t) = -1 * t^-7  +  -2 * t^-3  +  -1 * t^1", a.B.String())
	require.Equal(s.T(), "P(t) = 1 * t^1  +  1 * t^5", a.C.String())
	require.Equal(s.T(), "P(t) = 1 * t^-5  +  1 * t^-1", a.D.String())
	require.Equal(s.T(), "P(t) = 1 * t^-5  +  1 * t^-1", a.E.String())
}

// TestKnownJones compares against hand-checked closures: σ₁ closes to a
// two-component unlink (U²), σ₁σ₂ to a single unknot (U).
func (s *EngineSuite) TestKnownJones() {
	cases := map[string]string{
		"A":       "P(t) = 1 * t^-4  +  2 * t^0  +  1 * t^4",
		"Ainv":    "P(t) = 1 * t^-4  +  2 * t^0  +  1 * t^4",
		"A B":     "P(t) = -1 * t^-2  +  -1 * t^2",
		"A Binv":  "P(t) = -1 * t^-2  +  -1 * t^2",
		"A A B":   "P(t) = 1 * t^-12  +  1 * t^-8  +  1 * t^-4  +  1 * t^0",
		"A A A":   "P(t) = -1 * t^-20  +  -1 * t^-16  +  1 * t^-12  +  2 * t^-8  +  2 * t^-4  +  1 * t^0",
		"A A A B": "P(t) = 1 * t^-18  +  -1 * t^-10  +  -1 * t^-6  +  -1 * t^-2",
	}
	for word, want := range cases {
		got := s.eng.Annotate(mustWord(s.T(), word))
		require.True(s.T(), got.Jones.Equal(mustParse(s.T(), want)), "%s: got %v", word, got.Jones)
	}
}

// TestMirrorSymmetry checks Jones(mirror w) == mirror(Jones w) for every
// canonical word up to length 4.
func (s *EngineSuite) TestMirrorSymmetry() {
	for n := 0; n <= 4; n++ {
		for _, w := range braid.Layer(n) {
			j := s.eng.Annotate(w).Jones
			m := s.eng.Annotate(w.Mirror())
			require.Equal(s.T(), -w.Writhe(), m.Writhe)
			require.True(s.T(), m.Jones.Equal(j.Mirror()), "word %v", w)
		}
	}
}

// TestEqualElementsEqualJones checks that the two spellings of each
// length-3 duplicate element give identical invariants.
func (s *EngineSuite) TestEqualElementsEqualJones() {
	pairs := [][2]string{
		{"B A Binv", "Ainv B A"},
		{"B Ainv Binv", "Ainv Binv A"},
		{"A B Ainv", "Binv A B"},
		{"A Binv Ainv", "Binv Ainv B"},
		{"A B A", "B A B"},
	}
	for _, p := range pairs {
		x := s.eng.Annotate(mustWord(s.T(), p[0]))
		y := s.eng.Annotate(mustWord(s.T(), p[1]))
		require.True(s.T(), x.Jones.Equal(y.Jones), "%s vs %s", p[0], p[1])
	}
}

// TestDescendants matches braid.Descendants and incremental Step results.
func (s *EngineSuite) TestDescendants() {
	parent := s.eng.Annotate(mustWord(s.T(), "A B"))
	children := s.eng.Descendants(parent)
	words := braid.Descendants(parent.Word)
	require.Len(s.T(), children, len(words))
	for i, c := range children {
		require.True(s.T(), c.Word.Equal(words[i]))
		direct := s.eng.Annotate(words[i])
		require.True(s.T(), c.A.Equal(direct.A))
		require.True(s.T(), c.E.Equal(direct.E))
		require.Equal(s.T(), direct.Writhe, c.Writhe)
	}
}

// TestStepDoesNotAlias mutates a child and checks parent and sibling.
func (s *EngineSuite) TestStepDoesNotAlias() {
	parent := s.eng.Identity()
	want := parent.B.Clone()

	left := s.eng.Step(parent, braid.A)
	right := s.eng.Step(parent, braid.B)
	wantRight := right.A.Clone()

	left.A.SetCoef(0, 1000)
	left.B.SetCoef(0, 1000)
	left.E.SetCoef(0, 1000)

	require.True(s.T(), parent.B.Equal(want))
	require.True(s.T(), right.A.Equal(wantRight))

	id := s.eng.Identity()
	id.B.SetCoef(0, 7)
	require.False(s.T(), id.B.Equal(id.C), "B and C start equal but are separate values")
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

// TestRemainderSign reproduces the truncated-remainder sign: odd negative
// writhe scales the bracket by 3 instead of −1.
func TestRemainderSign(t *testing.T) {
	eng, err := bracket.NewEngine(bracket.WithSignMode(bracket.RemainderSign))
	require.NoError(t, err)
	assert.Equal(t, bracket.RemainderSign, eng.SignMode())

	got := eng.Annotate(mustWord(t, "Ainv")).Jones
	assert.Equal(t, "P(t) = -3 * t^-4  +  -6 * t^0  +  -3 * t^4", got.String())

	pos := eng.Annotate(mustWord(t, "A A A")).Jones
	assert.True(t, pos.Equal(mustParse(t, "P(t) = -1 * t^-20  +  -1 * t^-16  +  1 * t^-12  +  2 * t^-8  +  2 * t^-4  +  1 * t^0")))
}

// TestJonesPolynomial checks the correction factor directly.
func TestJonesPolynomial(t *testing.T) {
	one := poly.Constant(1)
	cases := []struct {
		writhe int64
		mode   bracket.SignMode
		want   poly.Poly
	}{
		{0, bracket.ParitySign, poly.Constant(1)},
		{1, bracket.ParitySign, poly.Monomial(-3, -1)},
		{-1, bracket.ParitySign, poly.Monomial(3, -1)},
		{-2, bracket.ParitySign, poly.Monomial(6, 1)},
		{1, bracket.RemainderSign, poly.Monomial(-3, -1)},
		{-1, bracket.RemainderSign, poly.Monomial(3, 3)},
		{-2, bracket.RemainderSign, poly.Monomial(6, 1)},
	}
	for _, tc := range cases {
		got := bracket.JonesPolynomial(one, tc.writhe, tc.mode)
		assert.True(t, got.Equal(tc.want), "writhe %d mode %v: got %v", tc.writhe, tc.mode, got)
	}
}

// TestOptions covers option validation and sign mode parsing.
func TestOptions(t *testing.T) {
	_, err := bracket.NewEngine(bracket.WithSignMode(bracket.SignMode(7)))
	assert.ErrorIs(t, err, bracket.ErrOptionViolation)

	eng, err := bracket.NewEngine()
	require.NoError(t, err)
	assert.Equal(t, bracket.ParitySign, eng.SignMode())

	for _, m := range []bracket.SignMode{bracket.ParitySign, bracket.RemainderSign} {
		got, err := bracket.ParseSignMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	_, err = bracket.ParseSignMode("floor")
	assert.ErrorIs(t, err, bracket.ErrOptionViolation)
	assert.Equal(t, "SignMode(7)", bracket.SignMode(7).String())
}
