// Package registry provides the process-wide catalog mapping
// compile-time type identity to layout descriptors and schema names to
// built schemas.
//
// The two maps are guarded by independent reader/writer locks: lookups
// take a read lock, registration takes a write lock. Descriptors and
// schemas are immutable once inserted, so no teardown is required
// beyond process exit.
//
// Registration events are logged through a zap logger, which defaults
// to a nop; embedders opt in with SetLogger.
package registry
