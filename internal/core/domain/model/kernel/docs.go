// Package kernel provides the shared value objects of the ordering domain.
//
// The package includes:
//   - UUID: identity value object used for all entities and aggregates
//   - Money: exact decimal amount used for prices, subtotals, and order totals
//
// Kernel value objects are immutable, compared by value, and safe for
// concurrent use. Monetary arithmetic never goes through floating point;
// Money wraps an arbitrary-precision decimal so that totals reconstruct
// bit-for-bit from storage.
package kernel
