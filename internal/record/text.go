package record

import "bytes"

// readTextTrailer reads a 16 record's free-text trailer. c.pos is
// positioned right after the comma that follows customer_ref_num. Unlike
// the rest of a record, text lines are not field-split: a line terminator
// not preceded by "88," on the following line simply ends the trailer,
// with no requirement that the text itself end in '/'.
func readTextTrailer(c *cursor) ([]string, error) {
	if c.eof() {
		return nil, &LexError{Tag: int(TagTransactionDetail), Offset: c.pos, Msg: "unexpected end of input entering transaction text"}
	}
	// The byte immediately after the comma is a seed byte: legacy BAI2
	// writers emit one throwaway byte here before the real text begins,
	// and it is kept verbatim as part of the first line.
	seed := c.data[c.pos]
	c.pos++
	first, err := readTextLine(c)
	if err != nil {
		return nil, err
	}
	lines := []string{string(seed) + first}
	for !c.eof() && c.peekStartsWith88() {
		c.pos += 3
		line, err := readTextLine(c)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// readTextLine reads bytes from c.pos up to (and consuming) the next line
// terminator, or to end of input if there is none. Trailing spaces are
// stripped.
func readTextLine(c *cursor) (string, error) {
	start := c.pos
	for c.pos < len(c.data) && !isLineTerm(c.data[c.pos]) {
		c.pos++
	}
	content := c.data[start:c.pos]
	if c.pos < len(c.data) {
		c.consumeLineTerminator()
	}
	return string(bytes.TrimRight(content, " ")), nil
}
