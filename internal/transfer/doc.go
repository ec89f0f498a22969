// Package transfer implements the fee-aware score transfer protocol.
//
// Every transfer of amount a costs the sender a + Fee(a), where Fee is a
// floor-rounded 10% charge. MaxSendable finds the largest amount whose total
// deduction fits a balance. Engine.Attempt retries a single target with a
// geometrically decaying amount, and Engine.Distribute splits a balance
// evenly across several targets.
//
// The arithmetic helpers are pure. The engine only performs side effects
// through the SendFunc, FollowFunc and ports.Notifier it is given.
package transfer
