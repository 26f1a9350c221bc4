// Package stringfst compiles strings into linear-chain FSTs and builds the
// small family of character-class acceptors a rewrite rule's context needs.
//
// Each compiled string is a simple linear chain of states, one arc per
// byte; character classes are small data-driven tables of byte ranges
// feeding a single self-looping constructor.
package stringfst
