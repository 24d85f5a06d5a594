// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the dispatch system. It implements business
// rules that span couriers and orders and don't naturally belong to a single
// aggregate root.
//
// The package includes:
//   - ReconciliationPolicy: Decides which assigned orders a changed courier
//     profile disqualifies
//   - OrderDispatcher: Selects a compatible courier for an unassigned order
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
