package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bft-labs/scoreship/internal/transfer"
)

func newCalcCommand(defaultAttempts int) *cobra.Command {
	var targets, attempts int

	cmd := &cobra.Command{
		Use:   "calc <balance>",
		Short: "Preview fee, max sendable amount and retry schedule for a balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			balance, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || balance < 0 {
				return fmt.Errorf("invalid balance %q", args[0])
			}
			if targets <= 0 {
				return fmt.Errorf("targets must be positive")
			}
			if attempts <= 0 {
				return fmt.Errorf("attempts must be positive")
			}
			writeCalc(cmd.OutOrStdout(), balance, targets, attempts)
			return nil
		},
	}
	cmd.Flags().IntVar(&targets, "targets", 1, "number of recipients sharing the balance")
	cmd.Flags().IntVar(&attempts, "attempts", defaultAttempts, "attempts per target")
	return cmd
}

func writeCalc(w io.Writer, balance int64, targets, attempts int) {
	maxSend := transfer.MaxSendable(balance)
	share := transfer.SplitAmong(maxSend, targets)

	fmt.Fprintf(w, "balance:       %d\n", balance)
	fmt.Fprintf(w, "max sendable:  %d (fee %d, deducted %d)\n", maxSend, transfer.Fee(maxSend), maxSend+transfer.Fee(maxSend))
	fmt.Fprintf(w, "per target:    %d x %d (fee %d each)\n", share, targets, transfer.Fee(share))
	fmt.Fprintln(w, "retry schedule:")
	for i, amount := range transfer.Schedule(share, attempts) {
		fmt.Fprintf(w, "  #%d  %d (fee %d)\n", i+1, amount, transfer.Fee(amount))
	}
}
