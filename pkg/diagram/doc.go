// Package diagram implements the in-memory diagram document model.
//
// A Document is a set of pages. Each page is an independent namespace with
// its own cells, layers, and identifier counter. Cells are vertices or
// edges; a vertex with the group flag set is a container whose children are
// reparented to it. Every page has a default layer (id "1") that cannot be
// deleted, and a document always contains at least one page.
//
// # Mutation model
//
// The model is single-writer and synchronous. Every operation runs to
// completion before returning and there is no internal locking; an
// integrator hosting a Document in a concurrent environment must serialize
// access externally (one document per session, or a mutex around the API).
//
// All failures are returned as structured errors from the errors package,
// carrying stable codes such as CELL_NOT_FOUND or CANNOT_DELETE_LAST_PAGE.
// No operation panics across the package boundary.
//
// # Batch operations
//
// BatchAddCells stages a heterogeneous list of vertex and edge creations,
// resolving caller-supplied temporary ids (in both directions) before
// validating endpoints. Items fail independently; a dry run reports the
// same per-item outcomes without committing anything.
//
// # Interchange
//
// ExportXML renders the document in the drawio mxfile dialect, optionally
// with each diagram's subtree deflate-compressed and base64-encoded the way
// the desktop application does. ImportXML replaces the document with the
// parsed content; structural errors leave the current document untouched.
package diagram
