// Package history provides linear undo/redo for an ordered collection of rows.
//
// The history system uses the memento pattern: before every mutating action
// the caller commits, and the Manager stores a full copy of the collection.
// Undo and redo restore those copies in place. Key concepts:
//
// # Snapshots
//
// A Snapshot is an immutable copy of every row in the collection, tagged
// with the label of the action that produced that state. Snapshots never
// share memory with the live collection.
//
// # Manager
//
// The Manager owns the snapshot list and a cursor into it:
//
//	mgr := history.New(store)
//
//	mgr.Commit("Delete pages") // before the edit
//	store.Delete(3)
//
//	mgr.Undo()
//	mgr.Redo()
//
// Committing after an undo discards the abandoned redo entries. History is
// linear, never a tree.
//
// # Enablement
//
// Two Sinks receive the undo and redo availability after every operation,
// typically menu actions or key bindings:
//
//	mgr.SetSinks(undoAction, redoAction)
//
// Callers are expected to respect the sinks. Undo and Redo outside the valid
// range return an error wrapping ErrOutOfRange and leave the collection
// untouched.
//
// A Manager is not safe for concurrent use.
package history
