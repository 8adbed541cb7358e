// Package manifest reads a moving plan from YAML: the containers on hand,
// the items to move and the ordered pack and unpack steps to perform.
package manifest
