package usecase

import "errors"

// Client-facing error taxonomy. Handlers map these to HTTP statuses; the
// error text is the message the frontend displays. Anything outside this list
// is treated as an internal failure and never shown to the client.
var (
	// -- Registration / account --
	ErrEmailExists  = errors.New("User with this email already exists")
	ErrUserNotFound = errors.New("User not found")

	// -- Login / credentials (deliberately generic, no enumeration leakage) --
	ErrInvalidCredentials = errors.New("Invalid credentials")

	// -- Stores --
	ErrInvalidOwner  = errors.New("Invalid owner email or the user is not a Store Owner")
	ErrStoreNotFound = errors.New("Store not found.")
	ErrStoreNotOwned = errors.New("Store not found or not owned by you.")
	ErrNoStoresOwned = errors.New("You don't have any stores assigned to you.")
)
