package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"gitlab.com/nem2/catapult-sdk/client/config"
	"gitlab.com/nem2/catapult-sdk/client/metrics"
	"gitlab.com/nem2/catapult-sdk/client/nemclient"
)

// cli holds the flags and the clients shared by all sub commands
type cli struct {
	ctx        context.Context
	cfgFile    string
	nodeURL    string
	logLevel   string
	pretty     bool
	m          *metrics.Metrics
	network    *nemclient.NetworkClient
	blockchain *nemclient.BlockchainClient
}

func newRootCmd(ctx context.Context) *cobra.Command {
	c := &cli{ctx: ctx}
	root := &cobra.Command{
		Use:               serverIdentity,
		Short:             "Query a catapult node REST gateway",
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return c.teardown()
		},
	}
	root.PersistentFlags().StringVarP(&c.cfgFile, "cfg", "c", "", "configuration file with extension")
	root.PersistentFlags().StringVarP(&c.nodeURL, "node", "n", "", "node url, overrides the configuration file")
	root.PersistentFlags().StringVarP(&c.logLevel, "log-level", "l", "info", "Log Level")
	root.PersistentFlags().BoolVarP(&c.pretty, "pretty-log", "p", false, "Enables unstructured prettified logging. This is useful for local debugging")

	root.AddCommand(
		newBlockCmd(c),
		newTransactionsCmd(c),
		newHeightCmd(c),
		newScoreCmd(c),
		newStorageCmd(c),
		newNetworkCmd(c),
		newAddressCmd(),
		newVersionCmd(),
	)
	return root
}

func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	initLog(c.logLevel, c.pretty, cmd.ErrOrStderr())

	cfg, err := config.LoadClientConfig(c.cfgFile)
	if err != nil {
		return errors.Wrap(err, "fail to load config")
	}
	if len(c.nodeURL) > 0 {
		cfg.Client.NodeURL = c.nodeURL
	}

	c.m, err = metrics.NewMetrics(cfg.Metrics)
	if err != nil {
		return errors.Wrap(err, "fail to create metric instance")
	}
	if err := c.m.Start(); err != nil {
		return errors.Wrap(err, "fail to start metric collector")
	}

	c.network, err = nemclient.NewNetworkClient(cfg.Client, c.m)
	if err != nil {
		return errors.Wrap(err, "fail to create network client")
	}
	var resolver nemclient.NetworkTypeResolver = c.network
	if nt := cfg.Client.GetNetworkType(); !nt.IsEmpty() {
		resolver = nemclient.FixedNetworkType(nt)
	}
	c.blockchain, err = nemclient.NewBlockchainClientWithResolver(cfg.Client, c.m, resolver)
	if err != nil {
		return errors.Wrap(err, "fail to create blockchain client")
	}
	log.Debug().Str("node", cfg.Client.NodeURL).Msg("clients ready")
	return nil
}

func (c *cli) teardown() error {
	if c.m == nil {
		return nil
	}
	return c.m.Stop()
}

func initLog(level string, pretty bool, out io.Writer) {
	l, err := zerolog.ParseLevel(level)
	if err != nil {
		log.Warn().Msgf("%s is not a valid log-level, falling back to 'info'", level)
		l = zerolog.InfoLevel
	}
	if pretty {
		out = zerolog.ConsoleWriter{Out: out}
	}
	zerolog.SetGlobalLevel(l)
	log.Logger = log.Output(out).With().Str("service", serverIdentity).Logger()
}

// printJSON writes v as indented json to the command output
func printJSON(cmd *cobra.Command, v interface{}) error {
	buf, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "fail to marshal result")
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(buf))
	return err
}
