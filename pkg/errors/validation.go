package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// scenarioNameRegex matches valid scenario names: identifier-like, usable as
// a file stem and a log field without quoting.
var scenarioNameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidateScenarioName validates a scenario name from a fixture file.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - Identifier-like characters only (letters, digits, ".", "_", "-")
//   - Maximum length of 128 characters
func ValidateScenarioName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidScenario, "scenario name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidScenario, "scenario name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidScenario, "scenario name contains control characters")
		}
	}

	if !scenarioNameRegex.MatchString(name) {
		return New(ErrCodeInvalidScenario, "invalid scenario name: %q", name)
	}

	return nil
}

// ValidateOutputPath validates a user-supplied output file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	return nil
}

// ValidateRenderFormat validates a render output format name.
// Supported formats are "dot" and "svg".
func ValidateRenderFormat(format string) error {
	switch strings.ToLower(format) {
	case "dot", "svg":
		return nil
	case "":
		return New(ErrCodeInvalidFormat, "render format cannot be empty")
	default:
		return New(ErrCodeInvalidFormat, "unsupported render format %q (expected dot or svg)", format)
	}
}

// nonterminalNameRegex matches valid nonterminal names: an upper-case first
// letter followed by identifier characters.
var nonterminalNameRegex = regexp.MustCompile(`^[A-Z][A-Za-z0-9_']*$`)

// ValidateNonterminalName validates a nonterminal name used as a graph
// vertex reference.
func ValidateNonterminalName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidSymbol, "nonterminal name cannot be empty")
	}

	if !nonterminalNameRegex.MatchString(name) {
		return New(ErrCodeInvalidSymbol, "invalid nonterminal name: %q", name)
	}

	return nil
}
