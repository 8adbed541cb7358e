// Package storage implements containers that hold packable items: bags,
// boxes and moving trucks. Every container enforces a capacity derived from
// its size category and a per-kind multiplier, and admits an item only when
// the running totals of the held items overflow at most one of the
// container's three dimensions. Each kind layers its own rules on top:
// bags take personal items up to a weight ceiling, boxes remember whether
// they ever held something fragile, and moving trucks keep furniture at the
// back and unload it first.
//
// Containers are themselves packable, so they nest into trees. They are not
// safe for concurrent use; callers sharing a container across goroutines
// must serialise access to it.
package storage
