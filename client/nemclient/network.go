package nemclient

import (
	"context"
	"sync/atomic"

	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"

	"gitlab.com/nem2/catapult-sdk/client/config"
	"gitlab.com/nem2/catapult-sdk/client/metrics"
	"gitlab.com/nem2/catapult-sdk/client/nemclient/types"
	"gitlab.com/nem2/catapult-sdk/common"
	"gitlab.com/nem2/catapult-sdk/model"
)

// NetworkTypeResolver returns the network type the node belongs to
type NetworkTypeResolver interface {
	GetNetworkType(ctx context.Context) (common.NetworkType, error)
}

// FixedNetworkType resolves to itself without asking the node
type FixedNetworkType common.NetworkType

// GetNetworkType implement NetworkTypeResolver
func (f FixedNetworkType) GetNetworkType(_ context.Context) (common.NetworkType, error) {
	nt := common.NetworkType(f)
	if err := nt.Validate(); err != nil {
		return common.UnknownNetwork, err
	}
	return nt, nil
}

// NetworkClient queries /network, the network type is fetched once and remembered
type NetworkClient struct {
	*nodeClient
	group       singleflight.Group
	networkType atomic.Value
}

// NewNetworkClient create a new instance of NetworkClient
func NewNetworkClient(cfg config.ClientConfiguration, m *metrics.Metrics) (*NetworkClient, error) {
	nc, err := newNodeClient("network_client", cfg, m)
	if err != nil {
		return nil, err
	}
	return &NetworkClient{
		nodeClient: nc,
	}, nil
}

// GetNetwork returns the network the node reports
func (n *NetworkClient) GetNetwork(ctx context.Context) (*model.NetworkInfo, error) {
	buf, err := n.get(ctx, NetworkEndpoint, NetworkEndpoint, "")
	if err != nil {
		return nil, errors.Wrap(err, "fail to get network")
	}
	info, err := mapNetworkInfo(buf)
	if err != nil {
		n.errCounter.WithLabelValues("fail_unmarshal_network", "").Inc()
		return nil, errors.Wrap(withPayload(buf, err), "fail to decode network")
	}
	return info, nil
}

// GetNetworkType implement NetworkTypeResolver. Concurrent callers share a single request that
// runs detached from their contexts, ctx only bounds the wait of this caller. A failed lookup is
// not remembered so the next call asks again.
func (n *NetworkClient) GetNetworkType(ctx context.Context) (common.NetworkType, error) {
	if nt, ok := n.networkType.Load().(common.NetworkType); ok {
		return nt, nil
	}
	ch := n.group.DoChan(NetworkEndpoint, func() (interface{}, error) {
		if nt, ok := n.networkType.Load().(common.NetworkType); ok {
			return nt, nil
		}
		n.m.GetCounter(metrics.NetworkTypeLookup).Inc()
		info, err := n.GetNetwork(context.Background())
		if err != nil {
			return common.UnknownNetwork, err
		}
		n.networkType.Store(info.NetworkType)
		n.logger.Debug().Str("network", info.NetworkType.String()).Msg("network type resolved")
		return info.NetworkType, nil
	})
	select {
	case <-ctx.Done():
		return common.UnknownNetwork, errors.Wrap(ctx.Err(), "gave up waiting for network type")
	case res := <-ch:
		if res.Err != nil {
			return common.UnknownNetwork, res.Err
		}
		return res.Val.(common.NetworkType), nil
	}
}

func mapNetworkInfo(buf []byte) (*model.NetworkInfo, error) {
	var dto types.NetworkDTO
	if err := unmarshal(buf, &dto); err != nil {
		return nil, err
	}
	nt, err := common.NewNetworkTypeFromName(dto.Name)
	if err != nil {
		return nil, newDecodeError("name", err)
	}
	return &model.NetworkInfo{
		Name:        dto.Name,
		Description: dto.Description,
		NetworkType: nt,
	}, nil
}
