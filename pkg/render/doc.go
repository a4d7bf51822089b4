// Package render wraps a Form's markup in a complete <form> element through
// a pongo2 layout: hidden submission fields, HTTP method override, optional
// value snapshots and theme hooks. Component adapts a Form to templ.
package render
