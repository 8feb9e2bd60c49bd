// Package tokenizer approximates the token count a cl100k_base BPE
// encoder would produce, without shipping its vocabulary. It classifies
// runs of bytes into a small set of categories and scores each run by a
// fixed table — fast, deterministic, and monotonic under concatenation to
// within a small constant, but never byte-identical to a real BPE
// encoder.
package tokenizer
