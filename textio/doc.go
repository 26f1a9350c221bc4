// Package textio parses and emits the OpenFst AT&T tabular text format:
// arc lines "src dst ilabel olabel [weight]" and final-state lines
// "state [weight]", whitespace-separated, one per line, weight defaulting
// to the semiring's One when omitted.
//
// The first source state encountered becomes the start state; states
// referenced before being declared are created on demand with final
// weight Zero.
//
// Validation is strict and up front: every malformed line shape returns a
// sentinel error, with no silent coercion.
package textio
