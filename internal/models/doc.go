// Package models defines the core domain models for Housemate.
//
// # Models
//
//   - User: a registered account; belongs to at most one household
//   - Household: the shared-living group owning members, expenses and chores
//   - Expense: one shared cost event with per-member splits
//   - Chore: one assignable task with a completion lifecycle
//
// # Design Principles
//
//  1. **ID references, not pointers**: User and Household hold only id
//     strings referencing each other. Membership questions are answered by
//     querying the store, never by walking object graphs, so there is no
//     cyclic ownership.
//  2. **The household owns its member list**: member entries are embedded
//     in the Household record; a user record carries only the back
//     reference HouseholdID.
//  3. **Derived state stays derived**: a chore's overdue flag and an
//     expense's settled flag are computed from stored fields, never
//     persisted.
package models
