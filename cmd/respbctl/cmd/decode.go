package cmd

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"go.uber.org/zap"

	respb "github.com/maxpert/respb-protocol"
	"github.com/maxpert/respb-protocol/internal/textresp"
)

var decodeHex string

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Decode a single RESPB frame and print it as JSON",
	Long: `decode reads one hex-encoded RESPB frame — either from --hex or from
stdin — and prints a JSON summary: opcode name, mux id, and arguments.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := frameBytes(decodeHex)
		if err != nil {
			return err
		}

		parsed, next, err := respb.ParseOne(raw, 0)
		if err != nil {
			return fmt.Errorf("decode: %w", err)
		}
		if next != len(raw) {
			log.Warn("trailing bytes after frame", zap.Int("consumed", next), zap.Int("total", len(raw)))
		}

		out, err := summarize(parsed)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

// summarize renders a ParsedCommand as JSON, built incrementally with sjson
// rather than via a marshalled struct — this mirrors how respbctl's users
// pipe module payloads (which are themselves JSON, for the JSON module)
// through the same tool.
func summarize(cmd *respb.ParsedCommand) (string, error) {
	doc := "{}"
	var err error

	doc, err = sjson.Set(doc, "opcode", fmt.Sprintf("0x%04X", uint16(cmd.Opcode)))
	if err != nil {
		return "", err
	}
	name := respb.NameFor(cmd.Opcode)
	if cmd.Opcode == respb.OpModule {
		name = respb.ModuleNameFor(cmd.ModuleID, cmd.CommandID)
	}
	if doc, err = sjson.Set(doc, "name", name); err != nil {
		return "", err
	}
	if doc, err = sjson.Set(doc, "mux_id", cmd.MuxID); err != nil {
		return "", err
	}

	for i, a := range cmd.Args {
		path := fmt.Sprintf("args.%d", i)
		if doc, err = sjson.Set(doc, path, string(a)); err != nil {
			return "", err
		}
	}

	if cmd.Opcode == respb.OpRespPassthrough {
		doc, err = embedPassthrough(doc, cmd.RESPData)
		if err != nil {
			return "", err
		}
	}

	// JSON.SET's value argument is itself a JSON document; validate and
	// re-embed it structurally instead of leaving it as an escaped string,
	// so the decoded output reads naturally.
	if cmd.Opcode == respb.OpModule && cmd.ModuleID == respb.ModuleJSON && cmd.CommandID == 0 && len(cmd.Args) >= 3 {
		if gjson.ValidBytes(cmd.Args[2]) {
			doc, err = sjson.SetRaw(doc, "json_value", string(cmd.Args[2]))
			if err != nil {
				return "", err
			}
		}
	}

	return doc, nil
}

// embedPassthrough parses a RESP_PASSTHROUGH frame's embedded text-RESP bytes
// with textresp.Reader — the collaborator the passthrough shim in reader.go
// hands verbatim bytes off to — and embeds the decoded command array. If the
// payload isn't a well-formed RESP array of bulk strings (e.g. an inline
// reply), the raw bytes are embedded instead and the parse error is recorded.
func embedPassthrough(doc string, respData []byte) (string, error) {
	parts, parseErr := decodeRESPArray(respData)
	if parseErr != nil {
		raw, err := sjson.SetBytes([]byte(doc), "resp_data", string(respData))
		if err != nil {
			return "", err
		}
		doc = string(raw)
		return sjson.Set(doc, "resp_parse_error", parseErr.Error())
	}

	var err error
	for i, p := range parts {
		if doc, err = sjson.Set(doc, fmt.Sprintf("resp_command.%d", i), p); err != nil {
			return "", err
		}
	}
	return doc, nil
}

// decodeRESPArray reads a single RESP array of bulk strings (the shape every
// Redis command request takes) from data using textresp.Reader.
func decodeRESPArray(data []byte) ([]string, error) {
	r := textresp.NewReader(bytes.NewReader(data))

	n, err := r.ReadArrayHeader()
	if err != nil {
		return nil, err
	}

	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		b, err := r.ReadBulkString(nil)
		if err != nil {
			return nil, err
		}
		parts = append(parts, string(b))
	}
	return parts, nil
}

func frameBytes(hexFlag string) ([]byte, error) {
	if hexFlag != "" {
		return hex.DecodeString(hexFlag)
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, err
	}
	decoded := make([]byte, hex.DecodedLen(len(data)))
	n, err := hex.Decode(decoded, data)
	if err != nil {
		return nil, err
	}
	return decoded[:n], nil
}

func init() {
	decodeCmd.Flags().StringVar(&decodeHex, "hex", "", "hex-encoded frame bytes (default: read from stdin)")
	rootCmd.AddCommand(decodeCmd)
}
