/*
Package app is the host harness. It routes messages to the registered
contracts and executes every emitted command chain as a single atomic
unit: either the whole chain is written to the store, or none of it is.
*/
package app
