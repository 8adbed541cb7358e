// Package packable defines the capability shared by everything that can be
// placed inside a container: three linear dimensions and a derived volume.
// Items and containers both satisfy it, which is what lets containers nest.
package packable
