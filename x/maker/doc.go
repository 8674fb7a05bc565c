/*
Package maker implements the treasury automation contract. It
accumulates trading fee assets sent to it by liquidity pairs, converts
them into the target token and routes the proceeds to the governance
and staking accounts according to the configured split.

The contract never performs swaps or transfers itself. A collect
invocation plans the full command chain (swap commands addressed to
the pair contracts, followed by a distribute command addressed to the
contract itself) and hands it to the host, which executes it as one
atomic unit.
*/
package maker
