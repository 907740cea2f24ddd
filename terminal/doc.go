// Package terminal provides cell-grid primitives for character rendering:
// RGB triples, text attributes, cells, and a color model that covers named,
// indexed, and explicit-RGB representations with graceful degradation.
//
// Session wraps a tcell screen (raw mode, alternate buffer, hidden cursor)
// and flushes row-major cell buffers to it. Everything else in the package
// is pure data with no terminal I/O, so rendering code stays testable
// against plain cell slices.
package terminal
