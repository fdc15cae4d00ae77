// Package kernel contains the shared value objects of the domain model:
// entity identifiers (UUID) and geographic points (GeoPoint). Both are
// immutable, constructor-validated, and safe for concurrent use.
//
// Zero values of kernel types are invalid by design; every type exposes a
// Validate method that rejects instances not produced by a constructor.
// Aggregates call Validate on their kernel-typed fields during construction
// and when being restored from persistence.
package kernel
