package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHeightCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "height",
		Short: "Show the current chain height",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			height, err := c.blockchain.GetBlockchainHeight(c.ctx)
			if err != nil {
				return err
			}
			return printJSON(cmd, map[string]interface{}{"height": height})
		},
	}
}

func newScoreCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "score",
		Short: "Show the current chain score",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			score, err := c.blockchain.GetBlockchainScore(c.ctx)
			if err != nil {
				return err
			}
			return printJSON(cmd, map[string]interface{}{"score": score})
		},
	}
}

func newStorageCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "storage",
		Short: "Show the node storage counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info, err := c.blockchain.GetBlockchainStorage(c.ctx)
			if err != nil {
				return err
			}
			return printJSON(cmd, info)
		},
	}
}

func newNetworkCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "network",
		Short: "Show the network the node belongs to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info, err := c.network.GetNetwork(c.ctx)
			if err != nil {
				return err
			}
			return printJSON(cmd, info)
		},
	}
}

// newVersionCmd does not talk to a node, the root setup is skipped
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "version",
		Short:              "Shows version",
		Args:               cobra.NoArgs,
		PersistentPreRunE:  func(_ *cobra.Command, _ []string) error { return nil },
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s v%s, rev %s\n", serverIdentity, version, revision)
			return err
		},
	}
}
