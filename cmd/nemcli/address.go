package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"gitlab.com/nem2/catapult-sdk/common"
)

// newAddressCmd decodes an address locally, the root setup is skipped
func newAddressCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "address <address>",
		Short:              "Show the plain, pretty and encoded forms of an address",
		Args:               cobra.ExactArgs(1),
		PersistentPreRunE:  func(_ *cobra.Command, _ []string) error { return nil },
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := common.NewAddress(args[0])
			if err != nil {
				return errors.Wrap(err, "invalid address")
			}
			return printJSON(cmd, map[string]interface{}{
				"address":     addr,
				"pretty":      addr.Pretty(),
				"encoded":     addr.Encoded(),
				"networkType": addr.NetworkType(),
			})
		},
	}
}
