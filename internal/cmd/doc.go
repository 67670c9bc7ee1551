// Package cmd provides helpers for executing shell commands with proper error handling.
//
// This package wraps [os/exec.Cmd] to capture stderr and include it in error
// messages, making command failures more informative for users.
//
// # Design Notes
//
// subm shells out to the git CLI rather than using Go git libraries. This
// approach is simpler, more reliable, and ensures compatibility with user
// configurations (SSH keys, credential helpers, aliases). Execution is
// strictly sequential: each call blocks until the external command exits,
// and a non-zero exit halts the caller immediately.
package cmd
