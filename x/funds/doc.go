/*
Package funds keeps track of how much value every address holds.

Each address owns at most one wallet. A wallet stores a single amount
expressed in the smallest indivisible unit. Value never appears or
disappears within this extension, it only moves between wallets.
*/
package funds
