package bai2

import "github.com/greenline-fi/bai2/internal/model"

// FundsType describes the availability profile attached to a Summary
// AccountInfo or a TransactionDetail, keyed by its BAI2 wire letter.
type FundsType = model.FundsType

// FundsUnknown is the Z funds type: availability is not specified.
type FundsUnknown = model.FundsUnknown

// FundsImmediateAvail is the 0 funds type: funds are available immediately.
type FundsImmediateAvail = model.FundsImmediateAvail

// FundsOneDayAvail is the 1 funds type: funds are available after one day.
type FundsOneDayAvail = model.FundsOneDayAvail

// FundsTwoOrMoreDaysAvail is the 2 funds type: funds are available after
// two or more days.
type FundsTwoOrMoreDaysAvail = model.FundsTwoOrMoreDaysAvail

// FundsDistributedAvailS is the S funds type: availability split across
// three named buckets, each an optional signed amount.
type FundsDistributedAvailS = model.FundsDistributedAvailS

// FundsValueDated is the V funds type: funds become available at a given
// date, optionally with a time-of-day.
type FundsValueDated = model.FundsValueDated

// FundsDistribution is one (days, amount) pair within a
// FundsDistributedAvailD list.
type FundsDistribution = model.FundsDistribution

// FundsDistributedAvailD is the D funds type: an explicit list of
// (days, amount) distributions.
type FundsDistributedAvailD = model.FundsDistributedAvailD

// DistributedAvailDNumError is returned when a D funds type's declared
// count does not match the number of distributions actually present.
type DistributedAvailDNumError = model.DistributedAvailDNumError
