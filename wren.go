// Package wren catalogs classic software design patterns.
package wren

// Version is the current wren release.
const Version = "0.1.0"
