// Package order contains the payment order aggregate and its lifecycle
// state machine.
//
// An order is created in Pending status and advances through
// PaymentInitiated and Processing to Completed as payment initiation and
// provider notifications arrive. Transitions outside the defined set fail
// validation; no transition moves an order backward.
package order
