// Package user provides the User aggregate of the ordering domain.
//
// A user is an identity with a validated email address. Key business rules:
//   - Users must have a valid unique identifier and a well-formed email
//   - The name is optional and may be empty
//   - Email uniqueness across users is enforced at the repository boundary,
//     not by the aggregate itself
//
// Like the other aggregates, User has two construction paths: NewUser, which
// validates input, and RestoreUser, which rebuilds an already-valid persisted
// user without re-running creation-time validation.
package user
