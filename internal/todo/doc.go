// Package todo loads, validates, transforms, and saves the shell-todo task list.
//
// The task file (tasks.json) is a pretty-printed JSON array:
//
//	[
//	  {
//	    "description": "buy milk",
//	    "priority": 1
//	  },
//	  {
//	    "description": "pay taxes",
//	    "priority": 3
//	  }
//	]
//
// # Priority Values
//
//   - 0: low
//   - 1: normal
//   - 2: high
//   - 3: urgent
//
// Values 4-255 are tolerated on read and written back unchanged; they have
// no name and render with an empty priority cell.
//
// # Validation
//
// Documents are validated against an embedded JSON Schema (draft 2020-12)
// before decoding. Unknown fields, missing fields, and wrong types are
// rejected rather than silently dropped. A zero-length or whitespace-only
// file is an empty list.
//
// # Ordering
//
// A List keeps insertion order, which is the order on disk. Display order is
// a stable sort by priority descending; positions shown to the user are
// display positions and are mapped back to insertion indices for removal.
//
// # File Format
//
// When writing task files, the package uses:
//   - 2-space indentation
//   - No HTML escaping
//   - No trailing newline
//   - [] for an empty list
package todo
