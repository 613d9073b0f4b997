/*
Package errors implements custom error interfaces for the ledger.

Each returned error is categorized by wrapping one of the root errors
declared in this package. Test for a category using the root error Is
method:

  if errors.ErrNotFound.Is(err) { ... }

Create a new error instance by wrapping a root error with a description:

  errors.Wrap(errors.ErrEmpty, "beneficiary")

Extensions register their own root errors with unique codes using the
Register function. Wrap attaches a stack trace exactly once, at the
lowest frame.
*/
package errors
