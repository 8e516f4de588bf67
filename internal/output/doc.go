// Package output renders docket's command results, notifications and errors.
//
// Every command reports through a Printer. With --json a command writes one
// JSON document: its result, or {"error": "...", "code": N} on failure.
// Otherwise results go to stdout and notifications, warnings and errors go to
// stderr, styled with lipgloss when color is enabled.
//
// The Printer is also the notification channel used while creating a
// document. compose.Composer sends it a Notification for the created file or
// for the vault's error message, which is printed unchanged.
//
// Exit codes are carried by ExitError:
//
//	ExitSuccess     0
//	ExitUserError   1  bad arguments, unknown kind or settings field
//	ExitSystemError 2  settings unreadable, storage failure
//	ExitConflict    3  a document with the same name already exists
package output
