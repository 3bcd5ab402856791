package nemclient

import (
	"bytes"
	"encoding/json"
	"math/big"

	"github.com/pkg/errors"

	"gitlab.com/nem2/catapult-sdk/client/nemclient/types"
	"gitlab.com/nem2/catapult-sdk/common"
)

// unmarshal buf into v, any failure is a DecodeError naming the field when json knows it
func unmarshal(buf []byte, v interface{}) error {
	if err := json.Unmarshal(buf, v); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return newDecodeError(typeErr.Field, err)
		}
		return newDecodeError("", err)
	}
	return nil
}

// unmarshalArray is unmarshal for bodies that must be a json array
func unmarshalArray(buf []byte, v *[]json.RawMessage) error {
	trimmed := bytes.TrimSpace(buf)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return newDecodeError("", errors.New("expect a json array"))
	}
	return unmarshal(trimmed, v)
}

func requireString(field string, v *string) (string, error) {
	if v == nil {
		return "", newDecodeError(field, errMissing)
	}
	return *v, nil
}

func requireUInt64(field string, v *types.UInt64DTO) (*big.Int, error) {
	if v == nil {
		return nil, newDecodeError(field, errMissing)
	}
	return v.BigInt(), nil
}

func optionalUInt64(v *types.UInt64DTO) *big.Int {
	if v == nil {
		return nil
	}
	return v.BigInt()
}

func requireUint8(field string, v *uint8) (uint8, error) {
	if v == nil {
		return 0, newDecodeError(field, errMissing)
	}
	return *v, nil
}

// splitVersion splits an entity version, the high byte is the network and the low byte the version
func splitVersion(field string, v *uint32) (uint8, uint8, error) {
	if v == nil {
		return 0, 0, newDecodeError(field, errMissing)
	}
	if *v > 0xFFFF {
		return 0, 0, newDecodeError(field, errors.Errorf("version %d does not fit in 16 bits", *v))
	}
	return uint8(*v >> 8), uint8(*v), nil
}

func requirePublicAccount(field string, v *string, networkType common.NetworkType) (common.PublicAccount, error) {
	key, err := requireString(field, v)
	if err != nil {
		return common.PublicAccount{}, err
	}
	pa, err := common.NewPublicAccount(key, networkType)
	if err != nil {
		return common.PublicAccount{}, newDecodeError(field, err)
	}
	return pa, nil
}

func requireAddress(field string, v *string) (common.Address, error) {
	encoded, err := requireString(field, v)
	if err != nil {
		return common.NoAddress, err
	}
	addr, err := common.NewAddressFromEncoded(encoded)
	if err != nil {
		return common.NoAddress, newDecodeError(field, err)
	}
	return addr, nil
}
