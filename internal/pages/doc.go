// Package pages implements the page list edited by pagestack.
//
// A Store is the live, ordered collection of page rows. A Document wraps a
// Store with a history.Manager and commits before every edit, so each
// Insert, Delete, Move, Rotate, Duplicate and Reverse can be undone.
//
// Page lists are read from and written to YAML files. Only the pages are
// stored; undo history lives for the session only.
package pages
