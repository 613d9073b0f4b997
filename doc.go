/*
Package heirloom defines all common interfaces that tie the ledger
extensions together, as well as implementations of some of the simpler
components (when interfaces would be too much overhead).

Context is passed through context.Context between the application,
middleware and handlers. Common keys store execution information such as
the block height and block time. For every XYZ of type T supported by the
Context there exist two functions:

  WithXYZ(Context, T) Context
  GetXYZ(Context) (val T, ok bool)

The heart of the module is the treasure ledger in x/treasure: nobles lock
value for their heirs until an unlock instant, a proportional fee accrues
to a collector pool, and the administrator may adjust the fee rate or
withdraw the pool. The x/funds extension supplies the wallets and the
value-transfer primitive those operations rely on.
*/
package heirloom
