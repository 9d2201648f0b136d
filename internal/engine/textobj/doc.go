// Package textobj finds the byte range of a text object around a cursor.
//
// A text object is a span that can be detected from its boundaries: a
// bracket pair, a quoted string, a word, a sentence, a paragraph, an
// HTML tag, a markdown link or a fenced code block. Each can be selected
// "inner" (delimiters excluded) or "around" (delimiters included).
//
// Objects are keyed by the character that triggers them in the operator
// grammar ("ci(" uses '('). Every finder is an explicit scanning loop over
// the text; none of them uses regular expressions, so escaped quotes and
// nesting behave the same for every input.
//
// Offsets are byte offsets into the text; ranges are half-open.
package textobj
