package board

import "fmt"

// ParseError reports a malformed board text: an unrecognized token or a
// ragged row.
type ParseError struct {
	Line    int
	message string
}

// [ParseError] implements [error]
func (e ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.message)
}

// ConfigError reports a well-formed but unusable board, e.g. one without a
// probe cell.
type ConfigError struct {
	message string
}

// [ConfigError] implements [error]
func (e ConfigError) Error() string {
	return e.message
}
