package domain

import "time"

// TransferTarget is an external recipient identifier.
type TransferTarget string

// TransferAttempt is one try inside a transfer retry loop.
type TransferAttempt struct {
	Ordinal int
	Amount  int64
	Fee     int64
	Err     error
}

// Succeeded reports whether the attempt was accepted by the remote side.
func (a TransferAttempt) Succeeded() bool {
	return a.Err == nil
}

// TransferOutcome summarises the attempts made for a single target.
type TransferOutcome struct {
	Target   TransferTarget
	Offered  int64
	Attempts []TransferAttempt
	Sent     int64
	Fee      int64
	Success  bool
}

// Deducted is the total removed from the sender's balance.
func (o TransferOutcome) Deducted() int64 {
	return o.Sent + o.Fee
}

// TransferReceipt describes a committed transfer for the notification channel.
type TransferReceipt struct {
	Account string
	Target  TransferTarget
	Amount  int64
	Fee     int64
	At      time.Time
}

// Deducted is amount plus fee.
func (r TransferReceipt) Deducted() int64 {
	return r.Amount + r.Fee
}
