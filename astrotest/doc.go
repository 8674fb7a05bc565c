/*
Package astrotest provides in-memory implementations of the contract
collaborators (factory, pair contracts) together with small helpers for
building execution contexts and addresses, to be used only in tests.
*/
package astrotest
