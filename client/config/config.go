package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"

	"gitlab.com/nem2/catapult-sdk/common"
)

// Configuration of a nem client and the tooling around it
type Configuration struct {
	Client  ClientConfiguration  `json:"client" mapstructure:"client"`
	Metrics MetricsConfiguration `json:"metrics" mapstructure:"metrics"`
}

// ClientConfiguration settings for the node client
type ClientConfiguration struct {
	NodeURL string `json:"node_url" mapstructure:"node_url"`
	// NetworkType when set the client trust it instead of asking the node
	NetworkType string `json:"network_type" mapstructure:"network_type"`
}

type MetricsConfiguration struct {
	Enabled      bool          `json:"enabled" mapstructure:"enabled"`
	ListenPort   int           `json:"listen_port" mapstructure:"listen_port"`
	ReadTimeout  time.Duration `json:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout time.Duration `json:"write_timeout" mapstructure:"write_timeout"`
}

// LoadClientConfig read the client configuration from the given file, an empty file name
// means defaults and environment variables only
func LoadClientConfig(file string) (*Configuration, error) {
	v := viper.New()
	applyDefaultConfig(v)
	if len(file) > 0 {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("fail to read from config file: %w", err)
		}
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	var cfg Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("fail to unmarshal: %w", err)
	}
	if err := cfg.Client.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate the client configuration
func (c ClientConfiguration) Validate() error {
	if len(c.NodeURL) == 0 {
		return fmt.Errorf("node url is empty")
	}
	u, err := url.Parse(c.NodeURL)
	if err != nil {
		return fmt.Errorf("fail to parse node url(%s): %w", c.NodeURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("node url(%s) must be http or https", c.NodeURL)
	}
	if len(u.Host) == 0 {
		return fmt.Errorf("node url(%s) has no host", c.NodeURL)
	}
	if len(c.NetworkType) > 0 {
		if _, err := common.NewNetworkTypeFromName(c.NetworkType); err != nil {
			return fmt.Errorf("invalid network type: %w", err)
		}
	}
	return nil
}

// GetNetworkType returns the configured network type, UnknownNetwork when none is set
func (c ClientConfiguration) GetNetworkType() common.NetworkType {
	if len(c.NetworkType) == 0 {
		return common.UnknownNetwork
	}
	nt, err := common.NewNetworkTypeFromName(c.NetworkType)
	if err != nil {
		return common.UnknownNetwork
	}
	return nt
}

func applyDefaultConfig(v *viper.Viper) {
	v.SetDefault("client.node_url", "http://localhost:3000")
	v.SetDefault("client.network_type", "")
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.listen_port", "9000")
	v.SetDefault("metrics.read_timeout", "30s")
	v.SetDefault("metrics.write_timeout", "30s")
}
