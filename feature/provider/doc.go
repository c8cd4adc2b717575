// Package provider is the storage provider facade: a small set of object
// operations bound to one bucket in one region.
//
// # Operations
//
//   - Checks: CheckStoreAccess, CheckBucketAccess (plain booleans, every
//     failure reads as false) and CheckBucketRegion (errors are returned).
//   - Listing: ListObjects walks every backend page under a prefix and
//     flattens each key into a leaf name and a "/"-rooted parent path.
//   - Objects: GetObjectToFile, GetObject, GetObjectInfo, PutObjectFromFile,
//     PutObject, DeleteObject and MoveObject.
//
// # Write policy
//
// Every write derives its canned ACL and storage class from two flags:
//
//	private || trashed -> "private", otherwise "public-read"
//	trashed            -> REDUCED_REDUNDANCY, otherwise STANDARD
//
// # Moves
//
// MoveObject is a copy followed by a delete and is not atomic. A failed
// delete leaves both objects in place and is reported as a *MoveError with
// Outcome MoveDeleteFailed.
//
// # HTTP Endpoints
//
//   - GET /objects?prefix= : Lists objects as a RowSet.
//   - GET /objects/info?key= : Size and last modification time.
//   - GET /objects/content?key= : Raw content.
//   - PUT /objects/content?key=&private=&trashed= : Stores the body.
//   - DELETE /objects?key= : Deletes an object.
//   - POST /objects/move : Moves an object.
package provider
