// Package dsl declares content schemas as immutable Go values.
//
// Entry points
//   - String(): string schema; Min(n)/Max(n) bound its length in characters.
//   - Object(): object builder; chain Field/Require/UnknownStrict then Build()/MustBuild().
//   - Array(elem): every element must conform to elem.
//   - Tuple(elems...): positional form of draft-07 "items"; element i is checked
//     against elems[i] and elements past the tuple are unconstrained.
//
// Built schemas never change after Build, so a fragment (for example a link)
// is declared once and embedded by value into every parent that needs it:
//
//	link := dsl.Object().
//	    Field("label", dsl.String().Min(1)).
//	    Field("uri", dsl.String().Min(1)).
//	    Require("label", "uri").
//	    MustBuild()
//
//	section := dsl.Object().
//	    Field("title", dsl.String().Min(1)).
//	    Field("link", link).
//	    Require("title").
//	    MustBuild()
//
// Validation collects every issue in deterministic order (declared keys sorted,
// then unknown keys sorted) unless the context carries fail-fast.
package dsl
