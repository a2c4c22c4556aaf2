// Package output writes a section in one of the user facing formats: the
// terminal rendering, HTML fragment or page, the layout tree as JSON or YAML,
// or a plain table of the steps.
package output
