// Package settings stores and reads local snapshots of the client's settings
// documents.
//
// A snapshot is a directory holding one pretty-printed JSON file per document
// plus a manifest. The documents are opaque: the only guarantee is that they
// are the JSON the client returned at backup time.
package settings
