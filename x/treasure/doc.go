/*
Package treasure implements custodial, time-locked deposits.

A depositor locks value for a beneficiary until an unlock time. Once
the unlock time is reached the beneficiary can claim the deposit,
exactly once. The locked value is held at an address derived from the
record id, so it stays visible to wallet queries but no key can sign
for it.

A fee, expressed in basis points, is charged on deposits and
(depending on the configured policy) on claims. Collected fees
accumulate in a dedicated collector wallet that the configuration
owner can drain.
*/
package treasure
