package toml

import "fmt"

// ErrorKind is the closed set of ways a parse can fail. Tag values,
// not prose — the message lives on ParseError.Message.
type ErrorKind int

const (
	ErrorNone ErrorKind = iota
	ErrorEOF
	ErrorEOL
	ErrorUnexpectedText
	ErrorUnimplemented
	ErrorInvalidIdentifier
	ErrorKeyAlreadyExists
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorEOF:
		return "eof"
	case ErrorEOL:
		return "eol"
	case ErrorUnexpectedText:
		return "unexpected_text"
	case ErrorUnimplemented:
		return "unimplemented"
	case ErrorInvalidIdentifier:
		return "invalid_identifier"
	case ErrorKeyAlreadyExists:
		return "key_already_exists"
	default:
		return "none"
	}
}

// ParseError is returned by every parser entry point that can fail. It
// always corresponds to exactly one diagnostic already appended to the
// parser's sink — the first error found halts the parse, per
// spec section 7: no partial recovery is attempted.
type ParseError struct {
	Kind    ErrorKind
	Message string
	File    string
	Row     uint32
	Col     uint32
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s (%d, %d): %s", e.File, e.Row, e.Col, e.Message)
}

// fail records a diagnostic at (row, col) and returns the matching
// ParseError, the shape every parseXxx method returns on failure.
func (p *Parser) fail(kind ErrorKind, row, col uint32, format string, args ...any) *ParseError {
	msg := fmt.Sprintf(format, args...)
	p.diags.AddError(p.file, row, col, "%s", msg)
	return &ParseError{Kind: kind, Message: msg, File: p.file, Row: row, Col: col}
}

func (p *Parser) errEOF(row, col uint32) *ParseError {
	return p.fail(ErrorEOF, row, col, "unexpected end of file")
}

func (p *Parser) errEOL(row, col uint32) *ParseError {
	return p.fail(ErrorEOL, row, col, "unexpected end of line")
}

func (p *Parser) errUnexpectedText(row, col uint32) *ParseError {
	return p.fail(ErrorUnexpectedText, row, col, "unexpected text")
}

func (p *Parser) errUnimplemented(row, col uint32, what string) *ParseError {
	return p.fail(ErrorUnimplemented, row, col, "%s is not implemented", what)
}

func (p *Parser) errInvalidIdentifier(row, col uint32) *ParseError {
	return p.fail(ErrorInvalidIdentifier, row, col,
		"invalid identifier, name already in use by a value of a different type")
}

func (p *Parser) errKeyAlreadyExists(row, col uint32) *ParseError {
	return p.fail(ErrorKeyAlreadyExists, row, col, "key already exists")
}
