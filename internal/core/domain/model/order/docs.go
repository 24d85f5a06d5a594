// Package order provides domain entities and business logic for order management
// in the dispatch system. It implements the Order entity whose physical attributes
// are immutable and whose assignment state lives in the assignment relation.
//
// The package includes:
//   - Order: The entity holding identity, weight, region, and delivery hours
//
// Key business rules:
//   - Orders carry a client-assigned, non-negative, immutable integer id
//   - Weight is strictly positive and checked against courier carrying capacity
//   - Delivery hours are validated TimeWindow values that may wrap past midnight
//   - An order is either assigned to exactly one courier or unassigned (pooled);
//     the transition back to the pool is owned by the reconciliation engine
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
