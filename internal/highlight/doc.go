// Package highlight renders the lines of a fenced code block to HTML.
//
// A code block is rendered by exactly one [Emitter], selected once per
// block by [New] from the highlighting flag and the resolved
// [Selection]. Lines are fed in order to [Emitter.RenderLine] and the
// block is closed with a single [Emitter.Finalize] call.
//
// Three strategies exist behind the facade:
// inline mode resolves colors against a [Theme] and embeds them as
// style attributes, class mode tags spans with scope-derived CSS
// classes and defers colors to a style sheet, and the passthrough
// mode escapes lines without tokenizing them.
package highlight
