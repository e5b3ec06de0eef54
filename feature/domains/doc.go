// Package domains wires the domain table pipeline together.
//
// A Service loads a table (local file or s3:// object), parses it into a
// reconcile.Matrix, runs the engine with the configured probe, renders the
// result back into the original file and saves it with retries. Every probe
// is optionally recorded in the history ledger.
//
// # HTTP API
//
//   - POST /domains/reconcile: upload a table, receive the updated file
//   - GET /domains/check/:name: probe one name
//   - GET /domains/history/:name: recent probes of a name
package domains
