// Package config loads the two YAML collaborators a path template engine
// configuration is built from: roots.yml (storage roots per OS) and
// templates.yml (key, path-template, and string-template definitions).
//
// This is the only package in the module that reads from the filesystem
// (the profile package only writes profile output files);
// [go.pathkit.dev/pathkit/template] itself never performs I/O. Use
// [LoadRoots] and [LoadTemplates] to build a [TemplateSet] from disk.
package config
