// Package common holds enums shared by configuration and processing packages.
package common

//go:generate go tool go-enum --marshal --mustparse --names

// What happens to visible descendants of an internal chapter when chapters
// are removed.
// ENUM(keep, remove)
type ChildrenPolicy int

// Keep reports whether visible descendants survive their internal parent.
func (c ChildrenPolicy) Keep() bool {
	return c == ChildrenPolicyKeep
}
