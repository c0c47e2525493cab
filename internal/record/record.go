package record

// Record is implemented by every raw record variant this package produces.
type Record interface {
	Tag() Tag
}

// FileHeader is the raw 01 record.
type FileHeader struct {
	Sender           []byte
	Receiver         []byte
	CreationDate     []byte
	CreationTime     []byte
	IdentNum         []byte
	PhysicalRecordLen []byte
	BlockSize        []byte
	VersionNumber    []byte
}

func (FileHeader) Tag() Tag { return TagFileHeader }

// GroupHeader is the raw 02 record.
type GroupHeader struct {
	UltimateReceiver []byte
	Originator       []byte
	Status           []byte
	AsOfDate         []byte
	AsOfTime         []byte
	Currency         []byte
	AsOfDateMod      []byte
}

func (GroupHeader) Tag() Tag { return TagGroupHeader }

// FundsType is the raw, still-untyped funds availability descriptor shared
// by SummaryInfo entries (within AccountIdent) and TransactionDetail
// records. A funds type absent on the wire is a nil *FundsType, so Letter
// is always one of Z, 0, 1, 2, S, V or D.
type FundsType struct {
	Letter byte

	// S
	Immediate, OneDay, MoreThanOneDay []byte

	// V
	Date, Time []byte

	// D
	Num           []byte
	Distributions []Distribution
}

// Distribution is one (days, amount) pair of a D funds type.
type Distribution struct {
	Days, Amount []byte
}

// AccountInfo is one type_code/amount/item_count/funds_type tuple recorded
// against an AccountIdent. Which fields are meaningful depends on the
// type_code's taxonomy, decided one stage up.
type AccountInfo struct {
	TypeCode  []byte
	Amount    []byte
	ItemCount []byte
	Funds     *FundsType
}

// AccountIdent is the raw 03 record.
type AccountIdent struct {
	CustomerAccountNum []byte
	Currency           []byte
	Infos              []AccountInfo
}

func (AccountIdent) Tag() Tag { return TagAccountIdent }

// TransactionDetail is the raw 16 record. Text is nil when the record ended
// with a plain terminator instead of entering the free-text trailer.
type TransactionDetail struct {
	TypeCode       []byte
	Amount         []byte
	Funds          *FundsType
	BankRefNum     []byte
	CustomerRefNum []byte
	Text           []string
}

func (TransactionDetail) Tag() Tag { return TagTransactionDetail }

// AccountTrailer is the raw 49 record.
type AccountTrailer struct {
	ControlTotal []byte
	RecordsNum   []byte
}

func (AccountTrailer) Tag() Tag { return TagAccountTrailer }

// GroupTrailer is the raw 98 record.
type GroupTrailer struct {
	ControlTotal []byte
	AccountsNum  []byte
	RecordsNum   []byte
}

func (GroupTrailer) Tag() Tag { return TagGroupTrailer }

// FileTrailer is the raw 99 record.
type FileTrailer struct {
	ControlTotal []byte
	GroupsNum    []byte
	RecordsNum   []byte
}

func (FileTrailer) Tag() Tag { return TagFileTrailer }
