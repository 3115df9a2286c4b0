// Package keys provides concrete [go.pathkit.dev/pathkit/template.Key]
// implementations: typed, validated slots a template definition can bind
// a {name} reference to.
//
// The template package treats keys as an opaque capability contract; this
// package supplies the string, integer, sequence, timestamp, and enum
// variants a real template configuration needs. Construct instances with
// the New*Key functions and their functional options, then pass them to
// [go.pathkit.dev/pathkit/template.NewTemplate] (or NewTemplatePath /
// NewTemplateString) keyed by the alias used in the definition.
package keys
