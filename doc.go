/*
Package astroport defines the common interfaces that tie the treasury
automation packages together: messages, handlers, emitted commands,
addresses, block context and the key-value store family.

The design follows a host-driven execution model. A handler never
performs side effects on other contracts directly. Instead it returns
an ordered list of commands as part of its DeliverResult. The host
(see the app package) executes those commands strictly after the
handler returns, in emission order, inside the same atomic unit. If
any command fails, every state change of the invocation is discarded.
*/
package astroport
