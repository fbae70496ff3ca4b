// Package debug provides optional file-based debug logging.
//
// When the IMUI_DEBUG environment variable is set to a file path, debug
// messages are appended to that file. Otherwise, logging is a no-op. The
// interactive session owns the terminal, so this is where its frame logs go.
package debug
