package record

// cursor walks the raw input one field at a time, transparently resolving
// the 16/88 continuation protocol: a '/' that would otherwise close a
// record, followed by a line whose first three bytes are "88,", is treated
// as a plain field-separating comma instead, and the "88," prefix is
// discarded. Every other '/' genuinely ends the record it closes.
type cursor struct {
	data []byte
	pos  int
}

func newCursor(data []byte) *cursor { return &cursor{data: data} }

func (c *cursor) eof() bool { return c.pos >= len(c.data) }

func isLineTerm(b byte) bool { return b == '\n' || b == '\r' }

// consumeLineTerminator advances past a \n, \r, or \r\n starting at c.pos.
// It assumes isLineTerm(c.data[c.pos]) is already true.
func (c *cursor) consumeLineTerminator() {
	if c.data[c.pos] == '\r' && c.pos+1 < len(c.data) && c.data[c.pos+1] == '\n' {
		c.pos += 2
		return
	}
	c.pos++
}

func (c *cursor) peekStartsWith88() bool {
	return c.pos+3 <= len(c.data) &&
		c.data[c.pos] == '8' && c.data[c.pos+1] == '8' && c.data[c.pos+2] == ','
}

// scanRaw scans from c.pos for the next ',' or '/', with no continuation
// logic applied. It fails if a bare line terminator or EOF is hit first.
func (c *cursor) scanRaw() (content []byte, sep byte, err error) {
	start := c.pos
	for i := c.pos; i < len(c.data); i++ {
		switch c.data[i] {
		case ',', '/':
			content = c.data[start:i]
			sep = c.data[i]
			c.pos = i + 1
			return content, sep, nil
		case '\n', '\r':
			return nil, 0, &LexError{Tag: -1, Offset: start, Msg: "unterminated field: bare line terminator before ',' or '/'"}
		}
	}
	return nil, 0, &LexError{Tag: -1, Offset: start, Msg: "unexpected end of input inside a field"}
}

// readField reads one field, transparently splicing across a continued
// '/'. end reports whether this field was followed by a genuine record
// terminator (true) or more fields remain (false).
func (c *cursor) readField() (content []byte, end bool, err error) {
	content, sep, err := c.scanRaw()
	if err != nil {
		return nil, false, err
	}
	if sep == ',' {
		return content, false, nil
	}
	// sep == '/': a '/' is only ever valid immediately before a line
	// terminator or at end of input.
	if c.eof() {
		return content, true, nil
	}
	if !isLineTerm(c.data[c.pos]) {
		return nil, false, &LexError{Tag: -1, Offset: c.pos, Msg: "'/' not immediately followed by a line terminator"}
	}
	c.consumeLineTerminator()
	if c.peekStartsWith88() {
		c.pos += 3
		return content, false, nil
	}
	return content, true, nil
}

// fieldSeq reads a record's fields one at a time, tracking whether the
// record has already terminated. done is read directly by callers with a
// variable-length tail (the D funds type's distribution list), so that
// early termination is not treated as an error.
type fieldSeq struct {
	c    *cursor
	tag  Tag
	done bool
}

// next reads the next mandatory field. Calling it after the record has
// already terminated (done == true) is a lexer error: the record declared
// fewer fields than this record kind requires.
func (s *fieldSeq) next() (content []byte, err error) {
	if s.done {
		return nil, &LexError{Tag: int(s.tag), Offset: s.c.pos, Msg: "record ended before all required fields were read"}
	}
	content, end, err := s.c.readField()
	if err != nil {
		if le, ok := err.(*LexError); ok && le.Tag < 0 {
			le.Tag = int(s.tag)
		}
		return nil, err
	}
	s.done = end
	return content, nil
}

// finish checks that the record terminated exactly where the caller
// expected it to: after reading every field this record kind declares, and
// not before and not after.
func (s *fieldSeq) finish() error {
	if !s.done {
		return &LexError{Tag: int(s.tag), Offset: s.c.pos, Msg: "unexpected trailing fields after the last declared field"}
	}
	return nil
}
