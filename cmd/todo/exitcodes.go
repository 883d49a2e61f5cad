package main

// Exit codes returned by the todo binary.
const (
	ExitSuccess   = 0 // Success
	ExitError     = 1 // General error (runtime failure)
	ExitUsage     = 2 // Invalid arguments (missing value, bad index, bad note name)
	ExitDataError = 3 // Nothing to operate on (empty list, missing note file)
	ExitIOError   = 4 // Reading or writing the note file, or starting the editor, failed
)
