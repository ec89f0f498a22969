// Package domain contains the core entities and value objects for scoreship.
//
// This package is the innermost layer. It has no dependencies on
// infrastructure concerns (HTTP, terminals, logging) and contains only plain
// data and the rules that belong to it.
//
// # Entities
//
//   - [Account]: one credential/session with its private progress state
//   - [Profile], [Task], [Content]: remote-service views consumed by a session
//   - [TransferTarget], [TransferAttempt], [TransferOutcome], [TransferReceipt]:
//     score transfer values
//   - [Phase]: the session state machine position
//
// An Account is owned by exactly one session goroutine and is never shared.
package domain
