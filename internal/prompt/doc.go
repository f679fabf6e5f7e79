// Package prompt provides small interactive terminal prompts built on
// Bubble Tea.
//
// Confirm asks a y/N question (default no):
//
//	ok, err := prompt.Confirm("Delete /music/Artist/Studio/Album?")
//
// Input asks for a line of text with a prefilled default:
//
//	name, ok, err := prompt.Input("Report file", defaultPath)
//
// Callers that need to run headless inject fixed answers instead of
// these prompts (see audit.ConfirmFunc).
package prompt
