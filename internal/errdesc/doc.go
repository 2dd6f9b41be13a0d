// Package errdesc maps platform error codes to a symbolic name and a
// description for diagnostics.
package errdesc
