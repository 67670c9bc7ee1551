// Package git provides git operations via shell commands.
//
// All operations use [os/exec.Command] to call the git CLI directly rather
// than using Go git libraries. This approach is simpler, more reliable, and
// ensures compatibility with user configurations (SSH keys, credential
// helpers, aliases). The package keeps no state of its own: the repository's
// working tree, index, and .gitmodules file are owned entirely by git, and
// subm trusts git's exit codes and side effects.
//
// # Submodule Operations
//
// Core submodule management:
//
//   - [AddSubmodule]: Register a folder as a submodule tracking a URL
//   - [UpdateSubmodulesRemote]: Integrate the latest remote commits
//   - [InitSubmodules], [CheckoutSubmodules]: First-clone bootstrap
//   - [DeinitSubmodule], [RemoveFromIndex], [RemoveSubmoduleMetadata]:
//     The three removal steps, in that order
//
// # Repository Operations
//
//   - [EnsureRepo]: Precondition check run before every command
//   - [HasChanges], [Stage], [Commit], [Push]: Work tree plumbing
//   - [ListSubmodulePaths], [HasSubmodule]: Configured submodule lookup
//
// Failures are never retried or rolled back: a non-zero exit from any git
// invocation propagates immediately and prior side effects stay applied.
package git
