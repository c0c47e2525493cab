package record

import "io"

// Lexer pulls raw records, one at a time, from a BAI2 byte stream.
type Lexer struct {
	c *cursor
}

// NewLexer returns a Lexer over data. data is not copied or modified.
func NewLexer(data []byte) *Lexer {
	return &Lexer{c: newCursor(data)}
}

// Next returns the next raw record, or io.EOF once the input is exhausted.
func (l *Lexer) Next() (Record, error) {
	if l.c.eof() {
		return nil, io.EOF
	}
	offset := l.c.pos
	tag, err := l.readTag()
	if err != nil {
		return nil, err
	}
	switch tag {
	case TagFileHeader:
		return l.parseFileHeader()
	case TagGroupHeader:
		return l.parseGroupHeader()
	case TagAccountIdent:
		return l.parseAccountIdent()
	case TagTransactionDetail:
		return l.parseTransactionDetail()
	case TagAccountTrailer:
		return l.parseAccountTrailer()
	case TagGroupTrailer:
		return l.parseGroupTrailer()
	case TagFileTrailer:
		return l.parseFileTrailer()
	default:
		return nil, &LexError{Tag: -1, Offset: offset, Msg: "unrecognized record tag"}
	}
}

// readTag reads the fixed two-digit tag and the comma that follows it.
func (l *Lexer) readTag() (Tag, error) {
	c := l.c
	if c.pos+2 > len(c.data) {
		return 0, &LexError{Tag: -1, Offset: c.pos, Msg: "unexpected end of input reading record tag"}
	}
	d0, d1 := c.data[c.pos], c.data[c.pos+1]
	if d0 < '0' || d0 > '9' || d1 < '0' || d1 > '9' {
		return 0, &LexError{Tag: -1, Offset: c.pos, Msg: "record tag is not two digits"}
	}
	n := int(d0-'0')*10 + int(d1-'0')
	c.pos += 2
	if c.eof() || c.data[c.pos] != ',' {
		return 0, &LexError{Tag: -1, Offset: c.pos, Msg: "record tag not followed by ','"}
	}
	c.pos++
	return Tag(n), nil
}

func (l *Lexer) parseFileHeader() (Record, error) {
	seq := &fieldSeq{c: l.c, tag: TagFileHeader}
	var r FileHeader
	var err error
	if r.Sender, err = seq.next(); err != nil {
		return nil, err
	}
	if r.Receiver, err = seq.next(); err != nil {
		return nil, err
	}
	if r.CreationDate, err = seq.next(); err != nil {
		return nil, err
	}
	if r.CreationTime, err = seq.next(); err != nil {
		return nil, err
	}
	if r.IdentNum, err = seq.next(); err != nil {
		return nil, err
	}
	if r.PhysicalRecordLen, err = seq.next(); err != nil {
		return nil, err
	}
	if r.BlockSize, err = seq.next(); err != nil {
		return nil, err
	}
	if r.VersionNumber, err = seq.next(); err != nil {
		return nil, err
	}
	if err := seq.finish(); err != nil {
		return nil, err
	}
	return r, nil
}

func (l *Lexer) parseGroupHeader() (Record, error) {
	seq := &fieldSeq{c: l.c, tag: TagGroupHeader}
	var r GroupHeader
	var err error
	if r.UltimateReceiver, err = seq.next(); err != nil {
		return nil, err
	}
	if r.Originator, err = seq.next(); err != nil {
		return nil, err
	}
	if r.Status, err = seq.next(); err != nil {
		return nil, err
	}
	if r.AsOfDate, err = seq.next(); err != nil {
		return nil, err
	}
	if r.AsOfTime, err = seq.next(); err != nil {
		return nil, err
	}
	if r.Currency, err = seq.next(); err != nil {
		return nil, err
	}
	if r.AsOfDateMod, err = seq.next(); err != nil {
		return nil, err
	}
	if err := seq.finish(); err != nil {
		return nil, err
	}
	return r, nil
}

func (l *Lexer) parseAccountIdent() (Record, error) {
	seq := &fieldSeq{c: l.c, tag: TagAccountIdent}
	var r AccountIdent
	var err error
	if r.CustomerAccountNum, err = seq.next(); err != nil {
		return nil, err
	}
	if r.Currency, err = seq.next(); err != nil {
		return nil, err
	}
	for !seq.done {
		info, err := readAccountInfo(seq)
		if err != nil {
			return nil, err
		}
		r.Infos = append(r.Infos, info)
	}
	return r, nil
}

func readAccountInfo(seq *fieldSeq) (AccountInfo, error) {
	var info AccountInfo
	var err error
	if info.TypeCode, err = seq.next(); err != nil {
		return info, err
	}
	if seq.done {
		return info, nil
	}
	if info.Amount, err = seq.next(); err != nil {
		return info, err
	}
	if seq.done {
		return info, nil
	}
	if info.ItemCount, err = seq.next(); err != nil {
		return info, err
	}
	if seq.done {
		return info, nil
	}
	if info.Funds, err = readFundsType(seq); err != nil {
		return info, err
	}
	return info, nil
}

func (l *Lexer) parseTransactionDetail() (Record, error) {
	seq := &fieldSeq{c: l.c, tag: TagTransactionDetail}
	var r TransactionDetail
	var err error
	if r.TypeCode, err = seq.next(); err != nil {
		return nil, err
	}
	if !seq.done {
		if r.Amount, err = seq.next(); err != nil {
			return nil, err
		}
	}
	if !seq.done {
		if r.Funds, err = readFundsType(seq); err != nil {
			return nil, err
		}
	}
	if !seq.done {
		if r.BankRefNum, err = seq.next(); err != nil {
			return nil, err
		}
	}
	if !seq.done {
		if r.CustomerRefNum, err = seq.next(); err != nil {
			return nil, err
		}
	}
	if !seq.done {
		text, err := readTextTrailer(l.c)
		if err != nil {
			return nil, err
		}
		r.Text = text
	}
	return r, nil
}

func (l *Lexer) parseAccountTrailer() (Record, error) {
	seq := &fieldSeq{c: l.c, tag: TagAccountTrailer}
	var r AccountTrailer
	var err error
	if r.ControlTotal, err = seq.next(); err != nil {
		return nil, err
	}
	if r.RecordsNum, err = seq.next(); err != nil {
		return nil, err
	}
	if err := seq.finish(); err != nil {
		return nil, err
	}
	return r, nil
}

func (l *Lexer) parseGroupTrailer() (Record, error) {
	seq := &fieldSeq{c: l.c, tag: TagGroupTrailer}
	var r GroupTrailer
	var err error
	if r.ControlTotal, err = seq.next(); err != nil {
		return nil, err
	}
	if r.AccountsNum, err = seq.next(); err != nil {
		return nil, err
	}
	if r.RecordsNum, err = seq.next(); err != nil {
		return nil, err
	}
	if err := seq.finish(); err != nil {
		return nil, err
	}
	return r, nil
}

func (l *Lexer) parseFileTrailer() (Record, error) {
	seq := &fieldSeq{c: l.c, tag: TagFileTrailer}
	var r FileTrailer
	var err error
	if r.ControlTotal, err = seq.next(); err != nil {
		return nil, err
	}
	if r.GroupsNum, err = seq.next(); err != nil {
		return nil, err
	}
	if r.RecordsNum, err = seq.next(); err != nil {
		return nil, err
	}
	if err := seq.finish(); err != nil {
		return nil, err
	}
	return r, nil
}
