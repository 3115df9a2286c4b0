// Package template implements a bidirectional path/string template engine.
//
// A definition such as "shots/{Sequence}/{Shot}/work/{name}.v{version}.ma"
// binds a declarative grammar of literal text, key references ("{name}"),
// and optional sections ("[...]") to two operations: [Template.Apply]
// renders a definition given field values, and [Template.GetFields] inverts
// a concrete string back into field values.
//
// Keys are supplied by the caller via the [Key] interface; this package
// has no opinion on key types beyond the contract in key.go. See the
// sibling package go.pathkit.dev/pathkit/keys for concrete implementations.
//
// A [Template] is immutable after construction from [NewTemplate],
// [NewTemplatePath], or [NewTemplateString], and its read-only operations
// are safe for concurrent use.
package template
