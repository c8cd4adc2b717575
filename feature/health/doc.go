// Package health reports whether the storage provider can reach its store.
//
// It runs the three provider checks in order and collects them into a single
// Report:
//
//   - Store: an account level call succeeds.
//   - Bucket: the bound bucket is reachable.
//   - Region: the bucket lives in the configured region. A failed lookup is
//     reported with status "error" and the lookup error, never as a plain
//     mismatch.
//
// # HTTP Endpoints
//
//   - GET /health : Runs all checks. Answers 503 when any of them fails.
package health
