// Package e2e drives the built susres binary against live processes. The
// specs only build on Windows.
package e2e
