// Package application provides application initialization and dependency wiring.
// It loads the moving manifest named by the configuration, builds the
// containers and items it declares, and runs the pack and unpack steps,
// keeping the main package focused on CLI parsing and orchestration.
package application
