// Package item provides the things people move: personal belongings (books,
// clothes, laptops) and furniture. Items are immutable once built and expose
// only their dimensions and a human-readable label.
package item
