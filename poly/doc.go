// Package poly implements sparse Laurent polynomials in one variable t with
// exact int64 coefficients.
//
// What
//
//   - A Poly maps integer exponents (negative ones included) to coefficients.
//   - Absent exponents read as 0. A coefficient explicitly stored as 0 is legal
//     and compares equal to an absent one (see Poly.Equal).
//   - Constructors: Zero, Constant, Identity (t), InverseIdentity (t⁻¹),
//     Monomial, FromCoefs.
//   - Arithmetic: Add, Sub, Neg, Scale, Mul (convolution) and Mirror
//     (P(t) → P(t⁻¹)).
//
// Value semantics
//
//	Every operation returns a new Poly backed by its own map; operands are
//	never modified. Only SetCoef mutates, and only its receiver. Two Poly
//	values obtained from different operations never share storage.
//
// Equality
//
//	Do not compare Poly values with == or reflect.DeepEqual: a stored zero
//	would make structurally different maps describe the same polynomial.
//	Use Equal.
//
// Complexity (|P| = number of stored terms)
//
//   - Add/Sub: O(|P| + |Q|)
//   - Mul:     O(|P|·|Q|)
//   - String:  O(|P| log |P|)
//
// Usage
//
//	u := poly.Monomial(-2, -1).Add(poly.Monomial(2, -1)) // −t⁻² − t²
//	u3 := u.Mul(u).Mul(u)
//	fmt.Println(u3)          // P(t) = -1 * t^-6  +  -3 * t^-2  +  -3 * t^2  +  -1 * t^6
//	fmt.Println(u3.Coef(0))  // 0
package poly
