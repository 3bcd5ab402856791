package main

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"gitlab.com/nem2/catapult-sdk/client/nemclient"
)

func parseHeight(arg string) (uint64, error) {
	height, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid height %s", arg)
	}
	return height, nil
}

func newBlockCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "block <height>",
		Short: "Show the block at the given height",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			height, err := parseHeight(args[0])
			if err != nil {
				return err
			}
			block, err := c.blockchain.GetBlockByHeight(c.ctx, height)
			if err != nil {
				return err
			}
			return printJSON(cmd, block)
		},
	}
}

func newTransactionsCmd(c *cli) *cobra.Command {
	params := &nemclient.QueryParams{}
	var order string
	cmd := &cobra.Command{
		Use:   "transactions <height>",
		Short: "List the transactions of the block at the given height",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			height, err := parseHeight(args[0])
			if err != nil {
				return err
			}
			params.Order = nemclient.Order(order)
			txs, err := c.blockchain.GetBlockTransactions(c.ctx, height, params)
			if err != nil {
				return err
			}
			return printJSON(cmd, txs)
		},
	}
	cmd.Flags().IntVar(&params.PageSize, "page-size", 0, "number of transactions per page")
	cmd.Flags().StringVar(&params.ID, "id", "", "list transactions after this transaction id")
	cmd.Flags().StringVar(&order, "order", "", "asc or desc")
	return cmd
}
