package record

// readFundsType reads the funds_type slot shared by a SummaryInfo's
// AccountInfo tuple and a TransactionDetail: a single-byte letter field,
// followed by however many more fields that letter's variant requires.
// Returns nil, nil when the slot was empty (no funds type present).
func readFundsType(seq *fieldSeq) (*FundsType, error) {
	letter, err := seq.next()
	if err != nil {
		return nil, err
	}
	if len(letter) == 0 {
		return nil, nil
	}
	if len(letter) != 1 {
		return nil, &LexError{Tag: int(seq.tag), Offset: seq.c.pos, Msg: "funds type letter field must be exactly one byte"}
	}
	switch letter[0] {
	case 'Z', '0', '1', '2':
		return &FundsType{Letter: letter[0]}, nil

	case 'S':
		imm, err := seq.next()
		if err != nil {
			return nil, err
		}
		one, err := seq.next()
		if err != nil {
			return nil, err
		}
		more, err := seq.next()
		if err != nil {
			return nil, err
		}
		return &FundsType{Letter: 'S', Immediate: imm, OneDay: one, MoreThanOneDay: more}, nil

	case 'V':
		date, err := seq.next()
		if err != nil {
			return nil, err
		}
		tm, err := seq.next()
		if err != nil {
			return nil, err
		}
		return &FundsType{Letter: 'V', Date: date, Time: tm}, nil

	case 'D':
		num, err := seq.next()
		if err != nil {
			return nil, err
		}
		ft := &FundsType{Letter: 'D', Num: num}
		// Distributions are read greedily to the end of the record, not
		// capped at the declared num: the declared count and the actual
		// count are independent, and a mismatch between them is the field
		// typer's job to report, not the lexer's to paper over by
		// stopping early.
		for !seq.done {
			pos, done := seq.c.pos, seq.done
			days, err := seq.next()
			if err != nil {
				return nil, err
			}
			if len(days) == 0 {
				seq.c.pos, seq.done = pos, done
				break
			}
			if seq.done {
				// The record ended right after 'days': a malformed,
				// incomplete trailing pair. Record it with an empty
				// amount and stop; the field typer's declared-vs-actual
				// count check will surface the mismatch.
				ft.Distributions = append(ft.Distributions, Distribution{Days: days})
				break
			}
			amount, err := seq.next()
			if err != nil {
				return nil, err
			}
			if len(amount) == 0 {
				seq.c.pos, seq.done = pos, done
				break
			}
			ft.Distributions = append(ft.Distributions, Distribution{Days: days, Amount: amount})
		}
		return ft, nil

	default:
		return nil, &LexError{Tag: int(seq.tag), Offset: seq.c.pos, Msg: "unrecognized funds type letter"}
	}
}
