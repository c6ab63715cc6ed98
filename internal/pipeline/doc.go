// Package pipeline implements the stages of the Esperanto-to-Kanji
// substitution pipeline: text normalization, placeholder guarding, the
// ordered safe-replace engine, diacritic notation conversion, chunk
// splitting for parallel runs, and output formatting.
package pipeline
