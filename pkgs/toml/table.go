package toml

import (
	"errors"

	"github.com/LainAmongYou/celes/pkgs/lexer"
	"github.com/LainAmongYou/celes/pkgs/value"
)

// errNotATable is an internal sentinel walkToLeaf returns when a path
// segment names a non-table value; parseKeyPair turns it into a
// located ErrorInvalidIdentifier diagnostic.
var errNotATable = errors.New("toml: path segment is not a table")

// parseKeyPair reads "identifier = value" and inserts it under table,
// creating any intermediate subtables the dotted key crosses.
func (p *Parser) parseKeyPair(table *value.Table) error {
	headTok, ok := p.lex.PeekToken(lexer.IgnoreWhitespace)
	if !ok {
		return p.errEOF(p.lex.Row(), p.lex.Col())
	}

	path, err := p.parseIdentifier('=')
	if err != nil {
		return err
	}
	if err := p.expectNextChar('=', lexer.IgnoreWhitespace); err != nil {
		return err
	}

	tok, ok := p.lex.PeekToken(lexer.IgnoreWhitespace)
	if !ok {
		return p.errEOF(p.lex.Row(), p.lex.Col())
	}
	if tok.PassedNewline {
		return p.errEOL(tok.Row, tok.Col)
	}

	val, err := p.parseValue()
	if err != nil {
		return err
	}

	subtable, subkey, err := walkToLeaf(table, path)
	if err != nil {
		return p.errInvalidIdentifier(headTok.Row, headTok.Col)
	}
	if existing, ok := subtable.Get(subkey); ok {
		// A table or array at this key means the dotted path implicitly
		// claimed it as a namespace; setting a plain value there is a
		// type clash, not a duplicate declaration.
		switch existing.Type() {
		case value.KindTable, value.KindArray:
			return p.errInvalidIdentifier(headTok.Row, headTok.Col)
		default:
			return p.errKeyAlreadyExists(headTok.Row, headTok.Col)
		}
	}
	subtable.Set(subkey, val)
	return nil
}

// walkToLeaf walks path[:len-1] under start, creating subtables for
// any segment that doesn't exist yet, and returns the table the final
// segment should be set on. A path segment that already names a
// non-table value is an error.
func walkToLeaf(start *value.Table, path []string) (*value.Table, string, error) {
	cur := start
	for _, seg := range path[:len(path)-1] {
		if existing, ok := cur.Get(seg); ok {
			sub := existing.GetTable()
			if sub == nil {
				return nil, "", errNotATable
			}
			cur = sub
			continue
		}
		sub := value.NewTable()
		cur.Set(seg, value.TableValue(sub))
		cur = sub
	}
	return cur, path[len(path)-1], nil
}

// parseTableHeader reads a "[key.path]" or "[[key.path]]" header,
// attaches whatever table was pending from the previous header (keys
// before the first header already live in the root), and opens a fresh
// table for this one.
func (p *Parser) parseTableHeader() error {
	openTok, ok := p.lex.GetToken(lexer.IgnoreWhitespace)
	if !ok {
		return p.errEOF(p.lex.Row(), p.lex.Col())
	}

	peeked, ok := p.lex.PeekToken(lexer.IgnoreWhitespace)
	if !ok {
		return p.errEOF(p.lex.Row(), p.lex.Col())
	}
	isArray := false
	if peeked.Ch == '[' {
		isArray = true
		if _, ok := p.lex.GetToken(lexer.IgnoreWhitespace); !ok {
			return p.errEOF(p.lex.Row(), p.lex.Col())
		}
	}

	path, err := p.parseIdentifier(']')
	if err != nil {
		return err
	}
	if isArray {
		if err := p.expectNextChar(']', lexer.IgnoreWhitespace); err != nil {
			return err
		}
	}
	if err := p.expectNextChar(']', lexer.IgnoreWhitespace); err != nil {
		return err
	}
	if err := p.expectEOL(); err != nil {
		return err
	}

	if p.pending != nil {
		if err := p.attachPending(); err != nil {
			return err
		}
	}

	p.curTab = value.NewTable()
	p.pending = &pendingHeader{
		path:    path,
		isArray: isArray,
		table:   p.curTab,
		row:     openTok.Row,
		col:     openTok.Col,
	}
	return nil
}

// attachPending inserts the pending header's table into the root tree
// at its header path and clears it. Walking honors the table-array
// traversal rule: a header path segment that already names an array
// descends into that array's last element, since [[a]] followed by
// [a.b] nests b inside the most recently appended a.
func (p *Parser) attachPending() error {
	hdr := p.pending
	p.pending = nil

	cur := p.root
	for _, seg := range hdr.path[:len(hdr.path)-1] {
		existing, ok := cur.Get(seg)
		if !ok {
			sub := value.NewTable()
			cur.Set(seg, value.TableValue(sub))
			cur = sub
			continue
		}
		switch existing.Type() {
		case value.KindTable:
			cur = existing.GetTable()
		case value.KindArray:
			last, ok := existing.GetArray().Last()
			if !ok || last.Type() != value.KindTable {
				return p.errInvalidIdentifier(hdr.row, hdr.col)
			}
			cur = last.GetTable()
		default:
			return p.errInvalidIdentifier(hdr.row, hdr.col)
		}
	}

	leaf := hdr.path[len(hdr.path)-1]
	if hdr.isArray {
		existing, ok := cur.Get(leaf)
		if !ok {
			arr := value.NewArray()
			arr.Append(value.TableValue(hdr.table))
			cur.Set(leaf, value.ArrayValue(arr))
			return nil
		}
		arr := existing.GetArray()
		if arr == nil || !arr.IsTableArray() {
			return p.errInvalidIdentifier(hdr.row, hdr.col)
		}
		arr.Append(value.TableValue(hdr.table))
		return nil
	}

	if cur.Has(leaf) {
		return p.errInvalidIdentifier(hdr.row, hdr.col)
	}
	cur.Set(leaf, value.TableValue(hdr.table))
	return nil
}
