// Package dataset parses textual alignment-problem descriptions and
// implements the batch file-naming convention used by the dnalign CLI.
//
// Problem files:
//
//	A problem file describes two generation specs — a base string plus
//	insertion indices for each sequence — one token per line. Blank lines
//	are skipped and surrounding whitespace is trimmed. Two layouts are
//	accepted:
//
//	  1. Explicit counts:            2. Implicit lists:
//	       CCAG                           CCAG
//	       1        (s index count)       2
//	       2                              CATG
//	       CATG                           3
//	       1        (t index count)
//	       3
//
//	The explicit-count layout is attempted first; on any inconsistency
//	(non-integer count, too few lines) parsing falls back to the implicit
//	layout, where every integer line after a base string is one insertion
//	index and the next non-integer line starts the second spec.
//
// Batch convention:
//
//	Batch runs process in<k>.txt files and write one integer cost to the
//	matching output<k>.txt. Jobs enumerates a directory accordingly,
//	ordered by k.
//
// The parser is purely syntactic: it does not validate alphabets or
// index ranges — builder.Generate owns those checks and re-validates
// every spec it receives.
//
// Error handling (sentinel errors):
//
//   - ErrEmptyInput    — the input holds no non-blank lines.
//   - ErrMalformedSpec — neither layout matches (e.g. the second base
//     string is missing, or non-integer trailing content remains).
package dataset
