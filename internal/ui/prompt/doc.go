// Package prompt provides interactive terminal prompts.
//
// The confirmation prompt blocks until the user answers; there is no
// timeout. Piped (non-terminal) stdin falls back to plain line reading
// so answers can be scripted.
package prompt
