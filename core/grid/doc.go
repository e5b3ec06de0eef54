// Package grid converts persisted domain tables to and from the reconcile
// matrix.
//
// # Table layout
//
// Row 1, columns 2..N hold extension headers. Column 1 of rows 2..M holds
// domains. Every other cell is either blank (unchecked) or a recorded status.
//
// # Naming convention
//
// Every non-blank header is a tracked extension. Headers may be written with or
// without their leading dot ("com", ".com", " .COM " are the same column
// content); NormalizeExtension always produces the dotted lower-case form, and
// ComposeName appends it to the domain after dropping any trailing dot from the
// domain. "foo" under "com" is probed as "foo.com".
//
// # Formats and stores
//
// Codecs handle .xlsx (first worksheet, original workbook patched in place so
// formatting survives) and .csv. Stores read and write whole files: FileStore
// replaces local files atomically through a temporary file and rename,
// ObjectStore replaces s3://bucket/key objects with a single PutObject.
// SaveWithRetry wraps a store write in a bounded retry loop.
package grid
