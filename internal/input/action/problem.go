package action

import "fmt"

// ErrorKind classifies the failures the engine reports as actions.
type ErrorKind uint8

const (
	// KindNone means no problem.
	KindNone ErrorKind = iota
	// KindParseError is a malformed ex command or regular expression.
	KindParseError
	// KindInvalidRange is a line range outside the buffer.
	KindInvalidRange
	// KindUnknownCommand is an ex command name that is not recognized.
	KindUnknownCommand
	// KindNoMatch is an informational result: nothing matched.
	KindNoMatch
)

var kindNames = map[ErrorKind]string{
	KindNone:           "none",
	KindParseError:     "parse_error",
	KindInvalidRange:   "invalid_range",
	KindUnknownCommand: "unknown_command",
	KindNoMatch:        "no_match",
}

// String returns the wire name of the kind.
func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", k)
}

// Error builds an error action of the given kind.
func Error(kind ErrorKind, message, token string) Action {
	return NewWith(NameError, Problem{Kind: kind, Message: message, Token: token})
}

// Errorf builds an error action with a formatted message.
func Errorf(kind ErrorKind, token, format string, args ...any) Action {
	return Error(kind, fmt.Sprintf(format, args...), token)
}

// ParseError builds a parse error action.
func ParseError(message string) Action {
	return Error(KindParseError, message, "")
}

// InvalidRange builds an invalid range error action.
func InvalidRange(message string) Action {
	return Error(KindInvalidRange, message, "")
}

// UnknownCommand builds an unknown command error action naming token.
func UnknownCommand(token string) Action {
	return Error(KindUnknownCommand, "Unknown command: "+token, token)
}

// NoMatch builds the informational no-match action.
func NoMatch(message string) Action {
	return NewWith(NameNoMatch, Problem{Kind: KindNoMatch, Message: message})
}
