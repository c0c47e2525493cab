// Package bai2 parses the BAI2 cash-management reporting format, the flat
// file banks use to deliver account balance and transaction reporting to
// corporate customers.
//
// Parsing runs as a three-stage pipeline: internal/record lexes the byte
// stream into loosely typed records, internal/typed promotes field byte
// slices to strings, integers, dates and funds-type descriptors, and
// internal/convert folds the resulting record sequence into a File tree
// while checking every group, account, and file control total and count
// against its trailer record. Process wires the three stages together.
package bai2
