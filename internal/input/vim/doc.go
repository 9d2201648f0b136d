// Package vim holds the grammar tables and small stores behind the modal
// engine.
//
// The normal-mode grammar is
//
//	[count]["register][count][operator][count](motion|text-object)
//	[count]["register]command
//
// Every key sequence the engine understands is listed once in a canonical
// table (see NormalEntries, VisualEntries). A Trie is built from those
// tables and answers the two questions the resolver needs: does this
// sequence name an entry, and can it still grow into one.
//
// Operators are an explicit table: c d y > < = act on a following motion
// or text object; the two-key forms g~ gu gU gq gw are also operators, but
// their two-key spellings are complete table entries and resolve directly.
//
// The package also provides the RegisterStore and MarkStore the engine
// owns, and the count accumulator.
package vim
