// Package textutil implements the text normalization pipelines used when
// generating batch scripts: Unicode-to-ASCII transliteration, filename
// slugification, title derivation from paths, and empty-bracket cleanup.
//
// All pipelines are pure functions. Transliteration runs a curated
// substitution table ahead of generic NFKD decomposition so that characters
// the generic pass would drop (ligatures, eszett, Nordic letters) keep a
// readable ASCII spelling. The curated table is configuration data; callers
// extend it through NewTransliterator rather than by editing pipeline logic.
package textutil
