package model

import "fmt"

// UnfinishedError is returned when the input is exhausted before a
// FileTrailer record has been seen and validated.
type UnfinishedError struct {
	// State names the converter state the input ended in (e.g.
	// "InGroup", "InAccount").
	State string
}

func (e *UnfinishedError) Error() string {
	return fmt.Sprintf("bai2: input exhausted while converter was in state %s", e.State)
}

// StatusItemCountError is returned when a Status AccountInfo tuple carries
// an item_count, a field the Status taxonomy never defines.
type StatusItemCountError struct{}

func (e *StatusItemCountError) Error() string {
	return "bai2: status account info must not carry an item count"
}

// StatusFundsError is returned when a Status AccountInfo tuple carries a
// funds type, a field the Status taxonomy never defines.
type StatusFundsError struct{}

func (e *StatusFundsError) Error() string {
	return "bai2: status account info must not carry a funds type"
}
