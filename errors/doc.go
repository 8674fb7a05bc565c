/*
Package errors implements coded errors for the treasury automation
packages.

Errors are categorized by a root error. Each root carries a unique
numeric code that is stable across releases and safe to return to a
caller. Runtime errors wrap a root with additional context using Wrap
and are matched with the root's Is method, unwinding the cause chain.

Extensions declare their own roots with Register. Codes below 1000 are
reserved for this package.
*/
package errors
