package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	respb "github.com/maxpert/respb-protocol"
)

var (
	encodeName  string
	encodeMuxID uint16
	encodeArgs  []string
	encodeNewID bool
)

// nameToOpcode is the inverse of respb.NameFor, built once at init from the
// package's own name table via a small opcode sweep — respbctl has no need
// to maintain a second, hand-kept copy of the opcode list.
var nameToOpcode = func() map[string]respb.Opcode {
	m := make(map[string]respb.Opcode)
	for op := respb.Opcode(0); ; op++ {
		if n := respb.NameFor(op); n != "UNKNOWN" {
			m[n] = op
		}
		if op == 0xFFFF {
			break
		}
	}
	return m
}()

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Build a RESPB frame from a command name and arguments",
	Long: `encode assembles a single RESPB frame for a core opcode (module and
passthrough frames aren't supported by this shorthand) and prints it as hex.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		op, ok := nameToOpcode[encodeName]
		if !ok {
			return fmt.Errorf("encode: unknown command name %q", encodeName)
		}

		muxID := encodeMuxID
		if encodeNewID {
			id, err := uuid.NewRandom()
			if err != nil {
				return err
			}
			// Fold the random UUID down into a 16-bit mux id; collisions are
			// harmless for this CLI's use as a demo/test-data generator.
			b := id[:]
			muxID = uint16(b[0])<<8 | uint16(b[1])
		}

		byteArgs := make([][]byte, len(encodeArgs))
		for i, a := range encodeArgs {
			byteArgs[i] = []byte(a)
		}

		parsed := &respb.ParsedCommand{Opcode: op, MuxID: muxID, Args: byteArgs}

		out := make([]byte, encodedSize(parsed))
		n, err := respb.WriteCommand(out, parsed)
		if err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		fmt.Println(hex.EncodeToString(out[:n]))
		return nil
	},
}

func encodedSize(cmd *respb.ParsedCommand) int {
	size := 16
	for _, a := range cmd.Args {
		size += len(a) + 8
	}
	for _, o := range cmd.Opaque {
		size += len(o) + 8
	}
	return size
}

func init() {
	encodeCmd.Flags().StringVar(&encodeName, "name", "", "command name, e.g. GET, SET, MGET")
	encodeCmd.Flags().Uint16Var(&encodeMuxID, "mux-id", 0, "mux id to stamp on the frame")
	encodeCmd.Flags().StringSliceVar(&encodeArgs, "arg", nil, "argument, repeatable")
	encodeCmd.Flags().BoolVar(&encodeNewID, "new-mux-id", false, "generate a fresh mux id instead of using --mux-id")
	_ = encodeCmd.MarkFlagRequired("name")
	rootCmd.AddCommand(encodeCmd)
}
