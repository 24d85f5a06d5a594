// Package courier provides domain entities and business logic for courier management
// in the dispatch system. It implements the Courier aggregate root with the vehicle,
// region, and working-hours attributes the reconciliation engine evaluates orders against.
//
// The package includes:
//   - Courier: The aggregate root holding identity, transport type, regions, and hours
//   - TransportType: The vehicle enum that maps to carrying capacity
//   - Patch: A partial profile update merged field-by-field into the aggregate
//
// Key business rules:
//   - Couriers carry a client-assigned, non-negative, immutable integer id
//   - Carrying capacity is fixed per vehicle: foot 10, bike 15, car 50
//   - Regions form a duplicate-free set of non-negative integers
//   - Working hours are validated TimeWindow values that may wrap past midnight
//   - Partial updates touch only the fields present in the patch
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package courier
