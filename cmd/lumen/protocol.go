package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/lumen/internal/bridge"
)

type protocolOptions struct {
	jsonOutput bool
}

func newProtocolCmd() *cobra.Command {
	opts := &protocolOptions{}

	cmd := &cobra.Command{
		Use:   "protocol",
		Short: "List the message kinds exchanged with the host",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.jsonOutput {
				return renderProtocolJSON(cmd)
			}
			return renderProtocolTable(cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func renderProtocolTable(cmd *cobra.Command) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "KIND\tDIRECTION")
	for _, k := range bridge.Kinds() {
		fmt.Fprintf(writer, "%s\t%s\n", k, k.Direction())
	}

	return writer.Flush()
}

type protocolJSONKind struct {
	Kind     string `json:"kind"`
	Inbound  bool   `json:"inbound"`
	Outbound bool   `json:"outbound"`
}

func renderProtocolJSON(cmd *cobra.Command) error {
	kinds := bridge.Kinds()
	payload := make([]protocolJSONKind, 0, len(kinds))
	for _, k := range kinds {
		payload = append(payload, protocolJSONKind{
			Kind:     k.String(),
			Inbound:  k.Direction() == bridge.DirectionInbound,
			Outbound: k.Direction() == bridge.DirectionOutbound,
		})
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
