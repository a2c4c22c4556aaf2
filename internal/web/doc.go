// Package web renders the layout tree as HTML using gomponents and Tailwind
// utility classes. Everything below the breakpoint prefix collapses into a
// single stacked column; the connector and markers only appear at or above it.
package web
