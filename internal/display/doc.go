// Package display formats the user-facing outcome of a pick.
//
// The human-readable message always goes to the diagnostic stream (stderr):
//
//	Chosen file: /photos/2019/beach.jpg
//	No files with specified extensions found in /photos
//
// In bare mode the chosen path alone is also written to the primary output
// stream so it can be consumed by other programs:
//
//	outcome := display.Outcome{Root: root, Path: result.Path, Found: result.Found}
//	outcome.Display(os.Stdout, os.Stderr, display.Options{Bare: true})
package display
