// Package order provides domain entities and business logic for order
// management. It implements the Order aggregate root with lifecycle management,
// line items, and an append-only status history.
//
// The package includes:
//   - Order: the aggregate root owning items and status history
//   - OrderItem: a priced line item with a derived subtotal
//   - StatusChange: one append-only audit record per successful transition
//   - Status: the closed set of lifecycle states
//
// Key business rules:
//   - Status follows a defined workflow:
//     Created -> Paid -> Shipped -> Completed, or Created -> Cancelled
//   - An order can be paid at most once
//   - Cancelled and Completed are final states with no further transitions
//   - Every successful transition appends exactly one StatusChange; status is
//     never updated without recording history
//   - The order total always equals the sum of its item subtotals and is
//     maintained incrementally as items are added
//
// Each transition handles every source status explicitly, so the full
// (state, action) table is visible in the code rather than inferred from
// a pair of boolean checks.
package order
