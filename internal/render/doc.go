// Package render draws exercise results for the terminal.
//
// Every renderer returns a string; nothing writes to stdout directly. Colours
// come from Styles and degrade to plain text when the output is not a
// terminal, so the layout (and therefore the tests) depends only on the
// characters placed in each cell.
package render
