// Package union provides closed tagged unions of two to five alternatives
// and exhaustive dispatch over them.
//
// An OfN value holds exactly one payload of one of its type parameters and
// knows which one through its discriminant. It is never empty: the zero
// value holds the zero value of the first alternative.
//
//	var message = union.Declare4[Quit, Move, Write, Read]()
//	m := message.Alt1(Move{X: 1, Y: 2})
//
// Dispatch:
// - OnN: one handler per alternative; a missing handler is a compile error
// - PartialN: catch-all plus optional CaseN handlers, no exhaustiveness
// - MatchN/VisitN: run the handler of the active alternative
//
// Queries that work on any arity:
// - Holds/GetIf/MustGet: test and extract by exact type
// - Alternatives: the declared types in order
//
// Payloads are passed to handlers by value. Store pointers as alternatives
// when a handler has to mutate shared state.
package union
