// Package termtext holds the terminal-independent text helpers shared by the
// authoring workflow and the ui: a paged cursor list and sanitizers for
// user text that is about to be drawn.
package termtext
