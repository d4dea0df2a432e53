// Package order provides the Order aggregate of the fulfillment back office and
// the status machine that governs user edits.
//
// The package includes:
//   - Order: a shop's sale record with its line items
//   - Status: a closed enumeration with a transition table keyed by the stored status
//
// Key business rules:
//   - Only Holding and Processing may be requested by a user
//   - Packing and Fulfilled freeze the whole order against user edits
//   - Editing a Ready order forces it back to Processing and zeroes every
//     existing line item quantity before the edit is applied
//   - An order of an inactive shop cannot be created or changed
//   - A line item is admitted only for a product owned by the acting principal;
//     every rejected item is reported
//
// All rules are checked in one validation pass, so callers receive every
// violation at once and the order is left untouched when any is found.
package order
