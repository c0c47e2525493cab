package typed

import (
	"github.com/greenline-fi/bai2/internal/model"
	"github.com/greenline-fi/bai2/internal/record"
)

// typeFundsType converts a raw funds type into its typed union member.
// raw == nil means no funds type was present, and is not an error.
func (t *Typer) typeFundsType(raw *record.FundsType) (model.FundsType, error) {
	if raw == nil {
		return nil, nil
	}
	switch raw.Letter {
	case 'Z':
		return model.FundsUnknown{}, nil
	case '0':
		return model.FundsImmediateAvail{}, nil
	case '1':
		return model.FundsOneDayAvail{}, nil
	case '2':
		return model.FundsTwoOrMoreDaysAvail{}, nil
	case 'S':
		imm, err := decodeOptionalInt64(raw.Immediate)
		if err != nil {
			return nil, err
		}
		one, err := decodeOptionalInt64(raw.OneDay)
		if err != nil {
			return nil, err
		}
		more, err := decodeOptionalInt64(raw.MoreThanOneDay)
		if err != nil {
			return nil, err
		}
		return model.FundsDistributedAvailS{Immediate: imm, OneDay: one, MoreThanOneDay: more}, nil
	case 'V':
		dt, err := decodeDateOrTime(raw.Date, raw.Time, t.Calendar, t.EndOfDay)
		if err != nil {
			return nil, err
		}
		return model.FundsValueDated{Value: dt}, nil
	case 'D':
		num, err := decodeUint32(raw.Num)
		if err != nil {
			return nil, err
		}
		dists := make([]model.FundsDistribution, 0, len(raw.Distributions))
		for _, d := range raw.Distributions {
			days, err := decodeUint32(d.Days)
			if err != nil {
				return nil, err
			}
			amount, err := decodeInt64(d.Amount)
			if err != nil {
				return nil, err
			}
			dists = append(dists, model.FundsDistribution{Days: days, Amount: amount})
		}
		if int(num) != len(dists) {
			return nil, &model.DistributedAvailDNumError{Declared: num, Actual: len(dists)}
		}
		return model.FundsDistributedAvailD{Distributions: dists}, nil
	default:
		return nil, errUnreachableFundsLetter
	}
}
