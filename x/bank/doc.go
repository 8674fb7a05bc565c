/*
Package bank implements a minimal ledger contract. It tracks the held
quantity of every (asset, holder) pair and processes transfer messages.

Within this repository the ledger plays the role of both the native
currency module and the token contracts: every asset balance lives
here, and pair contracts settle their swaps through it. The maker
extension only depends on the narrow Balance interface it declares
itself.
*/
package bank
