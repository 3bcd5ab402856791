package model

import (
	"gitlab.com/nem2/catapult-sdk/common"
)

// NetworkInfo what a node reports about the network it belongs to
type NetworkInfo struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	NetworkType common.NetworkType `json:"networkType"`
}
