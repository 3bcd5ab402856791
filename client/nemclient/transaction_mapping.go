package nemclient

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"

	"gitlab.com/nem2/catapult-sdk/client/nemclient/types"
	"gitlab.com/nem2/catapult-sdk/common"
	"gitlab.com/nem2/catapult-sdk/model"
)

// mapTransaction decodes one {meta, transaction} element
func mapTransaction(raw json.RawMessage) (model.Transaction, error) {
	var env types.TransactionEnvelopeDTO
	if err := unmarshal(raw, &env); err != nil {
		return nil, err
	}
	if env.Meta == nil {
		return nil, newDecodeError("meta", errMissing)
	}
	body := bytes.TrimSpace(env.Transaction)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return nil, newDecodeError("transaction", errMissing)
	}
	info := mapTransactionInfo(env.Meta)
	tx, err := mapTransactionBody(body, info)
	if err != nil {
		return nil, prefixField("transaction", err)
	}
	return tx, nil
}

func mapTransactionInfo(meta *types.TransactionMetaDTO) *model.TransactionInfo {
	return &model.TransactionInfo{
		Height:              optionalUInt64(meta.Height),
		Index:               meta.Index,
		ID:                  meta.ID,
		Hash:                meta.Hash,
		MerkleComponentHash: meta.MerkleComponentHash,
		AggregateHash:       meta.AggregateHash,
		AggregateID:         meta.AggregateID,
	}
}

// mapTransactionBody dispatches on the type field, a type without decoder is kept raw
func mapTransactionBody(raw json.RawMessage, info *model.TransactionInfo) (model.Transaction, error) {
	var discriminator struct {
		Type *uint16 `json:"type"`
	}
	if err := unmarshal(raw, &discriminator); err != nil {
		return nil, err
	}
	if discriminator.Type == nil {
		return nil, newDecodeError("type", errMissing)
	}
	txType := model.TransactionType(*discriminator.Type)
	if !txType.IsKnown() {
		return &model.UnknownTransaction{
			AbstractTransaction: model.AbstractTransaction{
				Type:            txType,
				TransactionInfo: info,
			},
			Raw: append(json.RawMessage(nil), raw...),
		}, nil
	}

	var header types.AbstractTransactionDTO
	if err := unmarshal(raw, &header); err != nil {
		return nil, err
	}
	abs, err := mapAbstractTransaction(txType, header, info)
	if err != nil {
		return nil, err
	}
	switch txType {
	case model.TransferType:
		return mapTransferTransaction(raw, abs)
	case model.RegisterNamespaceType:
		return mapRegisterNamespaceTransaction(raw, abs)
	case model.MosaicDefinitionType:
		return mapMosaicDefinitionTransaction(raw, abs)
	case model.MosaicSupplyChangeType:
		return mapMosaicSupplyChangeTransaction(raw, abs)
	case model.ModifyMultisigAccountType:
		return mapModifyMultisigAccountTransaction(raw, abs)
	case model.AggregateCompleteType, model.AggregateBondedType:
		return mapAggregateTransaction(raw, abs)
	case model.LockFundsType:
		return mapLockFundsTransaction(raw, abs)
	case model.SecretLockType:
		return mapSecretLockTransaction(raw, abs)
	case model.SecretProofType:
		return mapSecretProofTransaction(raw, abs)
	}
	return nil, newDecodeError("type", errors.Errorf("no decoder for %s", txType))
}

// mapAbstractTransaction decodes the common fields, fee deadline and signature are only required on
// transactions that are not embedded in an aggregate
func mapAbstractTransaction(txType model.TransactionType, header types.AbstractTransactionDTO, info *model.TransactionInfo) (model.AbstractTransaction, error) {
	abs := model.AbstractTransaction{
		Type:            txType,
		TransactionInfo: info,
	}
	networkByte, version, err := splitVersion("version", header.Version)
	if err != nil {
		return abs, err
	}
	if abs.NetworkType, err = common.NewNetworkTypeFromByte(networkByte); err != nil {
		return abs, newDecodeError("version", err)
	}
	abs.Version = version
	if abs.Signer, err = requirePublicAccount("signer", header.Signer, abs.NetworkType); err != nil {
		return abs, err
	}
	inner := info != nil && info.IsAggregateInner()
	if inner {
		abs.Fee = optionalUInt64(header.Fee)
		if header.Deadline != nil {
			abs.Deadline = common.Deadline(header.Deadline.Uint64())
		}
		if header.Signature != nil {
			abs.Signature = *header.Signature
		}
		return abs, nil
	}
	if abs.Fee, err = requireUInt64("fee", header.Fee); err != nil {
		return abs, err
	}
	if header.Deadline == nil {
		return abs, newDecodeError("deadline", errMissing)
	}
	abs.Deadline = common.Deadline(header.Deadline.Uint64())
	if abs.Signature, err = requireString("signature", header.Signature); err != nil {
		return abs, err
	}
	return abs, nil
}

func mapMosaic(field string, dto types.MosaicDTO) (common.Mosaic, error) {
	id, err := requireUInt64(field+".id", dto.ID)
	if err != nil {
		return common.Mosaic{}, err
	}
	amount, err := requireUInt64(field+".amount", dto.Amount)
	if err != nil {
		return common.Mosaic{}, err
	}
	return common.NewMosaic(id, amount), nil
}

func mapTransferTransaction(raw json.RawMessage, abs model.AbstractTransaction) (model.Transaction, error) {
	var dto types.TransferTransactionDTO
	if err := unmarshal(raw, &dto); err != nil {
		return nil, err
	}
	tx := &model.TransferTransaction{
		AbstractTransaction: abs,
		Mosaics:             make(common.Mosaics, 0, len(dto.Mosaics)),
	}
	var err error
	if tx.Recipient, err = requireAddress("recipient", dto.Recipient); err != nil {
		return nil, err
	}
	for i, item := range dto.Mosaics {
		mosaic, err := mapMosaic(fmt.Sprintf("mosaics[%d]", i), item)
		if err != nil {
			return nil, err
		}
		tx.Mosaics = append(tx.Mosaics, mosaic)
	}
	if dto.Message != nil {
		payload, err := hex.DecodeString(dto.Message.Payload)
		if err != nil {
			return nil, newDecodeError("message.payload", err)
		}
		tx.Message = model.Message{
			Type:    model.MessageType(dto.Message.Type),
			Payload: string(payload),
		}
	}
	return tx, nil
}

func mapRegisterNamespaceTransaction(raw json.RawMessage, abs model.AbstractTransaction) (model.Transaction, error) {
	var dto types.RegisterNamespaceTransactionDTO
	if err := unmarshal(raw, &dto); err != nil {
		return nil, err
	}
	tx := &model.RegisterNamespaceTransaction{
		AbstractTransaction: abs,
	}
	namespaceType, err := requireUint8("namespaceType", dto.NamespaceType)
	if err != nil {
		return nil, err
	}
	tx.NamespaceType = model.NamespaceType(namespaceType)
	if tx.NamespaceName, err = requireString("name", dto.Name); err != nil {
		return nil, err
	}
	if tx.NamespaceID, err = requireUInt64("namespaceId", dto.NamespaceID); err != nil {
		return nil, err
	}
	switch tx.NamespaceType {
	case model.RootNamespace:
		if tx.Duration, err = requireUInt64("duration", dto.Duration); err != nil {
			return nil, err
		}
	case model.SubNamespace:
		if tx.ParentID, err = requireUInt64("parentId", dto.ParentID); err != nil {
			return nil, err
		}
	default:
		return nil, newDecodeError("namespaceType", errors.Errorf("namespace type %d is not supported", namespaceType))
	}
	return tx, nil
}

func mapMosaicDefinitionTransaction(raw json.RawMessage, abs model.AbstractTransaction) (model.Transaction, error) {
	var dto types.MosaicDefinitionTransactionDTO
	if err := unmarshal(raw, &dto); err != nil {
		return nil, err
	}
	tx := &model.MosaicDefinitionTransaction{
		AbstractTransaction: abs,
	}
	var err error
	if tx.NamespaceID, err = requireUInt64("parentId", dto.ParentID); err != nil {
		return nil, err
	}
	if tx.MosaicID, err = requireUInt64("mosaicId", dto.MosaicID); err != nil {
		return nil, err
	}
	if tx.MosaicName, err = requireString("name", dto.Name); err != nil {
		return nil, err
	}
	if len(dto.Properties) != 3 {
		return nil, newDecodeError("properties", errors.Errorf("expect flags, divisibility and duration, got %d values", len(dto.Properties)))
	}
	divisibility := dto.Properties[1].Uint64()
	if divisibility > 0xFF {
		return nil, newDecodeError("properties[1]", errors.Errorf("divisibility %d does not fit in 8 bits", divisibility))
	}
	tx.MosaicProperties = model.NewMosaicProperties(dto.Properties[0].Uint64(), uint8(divisibility), dto.Properties[2].BigInt())
	return tx, nil
}

func mapMosaicSupplyChangeTransaction(raw json.RawMessage, abs model.AbstractTransaction) (model.Transaction, error) {
	var dto types.MosaicSupplyChangeTransactionDTO
	if err := unmarshal(raw, &dto); err != nil {
		return nil, err
	}
	tx := &model.MosaicSupplyChangeTransaction{
		AbstractTransaction: abs,
	}
	var err error
	if tx.MosaicID, err = requireUInt64("mosaicId", dto.MosaicID); err != nil {
		return nil, err
	}
	direction, err := requireUint8("direction", dto.Direction)
	if err != nil {
		return nil, err
	}
	tx.SupplyType = model.MosaicSupplyType(direction)
	if tx.SupplyType != model.DecreaseSupply && tx.SupplyType != model.IncreaseSupply {
		return nil, newDecodeError("direction", errors.Errorf("supply direction %d is not supported", direction))
	}
	if tx.Delta, err = requireUInt64("delta", dto.Delta); err != nil {
		return nil, err
	}
	return tx, nil
}

func mapModifyMultisigAccountTransaction(raw json.RawMessage, abs model.AbstractTransaction) (model.Transaction, error) {
	var dto types.ModifyMultisigAccountTransactionDTO
	if err := unmarshal(raw, &dto); err != nil {
		return nil, err
	}
	tx := &model.ModifyMultisigAccountTransaction{
		AbstractTransaction: abs,
		MinApprovalDelta:    dto.MinApprovalDelta,
		MinRemovalDelta:     dto.MinRemovalDelta,
		Modifications:       make([]model.MultisigCosignatoryModification, 0, len(dto.Modifications)),
	}
	for i, item := range dto.Modifications {
		field := fmt.Sprintf("modifications[%d]", i)
		modType, err := requireUint8(field+".type", item.Type)
		if err != nil {
			return nil, err
		}
		if model.MultisigModificationType(modType) != model.AddCosignatory && model.MultisigModificationType(modType) != model.RemoveCosignatory {
			return nil, newDecodeError(field+".type", errors.Errorf("modification type %d is not supported", modType))
		}
		cosignatory, err := requirePublicAccount(field+".cosignatoryPublicKey", item.CosignatoryPublicKey, abs.NetworkType)
		if err != nil {
			return nil, err
		}
		tx.Modifications = append(tx.Modifications, model.MultisigCosignatoryModification{
			Type:        model.MultisigModificationType(modType),
			Cosignatory: cosignatory,
		})
	}
	return tx, nil
}

func mapAggregateTransaction(raw json.RawMessage, abs model.AbstractTransaction) (model.Transaction, error) {
	var dto types.AggregateTransactionDTO
	if err := unmarshal(raw, &dto); err != nil {
		return nil, err
	}
	tx := &model.AggregateTransaction{
		AbstractTransaction: abs,
		InnerTransactions:   make([]model.Transaction, 0, len(dto.Transactions)),
		Cosignatures:        make([]model.AggregateTransactionCosignature, 0, len(dto.Cosignatures)),
	}
	for i, item := range dto.Transactions {
		inner, err := mapTransaction(item)
		if err != nil {
			return nil, prefixField(fmt.Sprintf("transactions[%d]", i), err)
		}
		tx.InnerTransactions = append(tx.InnerTransactions, inner)
	}
	for i, item := range dto.Cosignatures {
		signer, err := requirePublicAccount(fmt.Sprintf("cosignatures[%d].signer", i), item.Signer, abs.NetworkType)
		if err != nil {
			return nil, err
		}
		tx.Cosignatures = append(tx.Cosignatures, model.AggregateTransactionCosignature{
			Signature: item.Signature,
			Signer:    signer,
		})
	}
	return tx, nil
}

func mapLockFundsTransaction(raw json.RawMessage, abs model.AbstractTransaction) (model.Transaction, error) {
	var dto types.LockFundsTransactionDTO
	if err := unmarshal(raw, &dto); err != nil {
		return nil, err
	}
	tx := &model.LockFundsTransaction{
		AbstractTransaction: abs,
	}
	var err error
	if tx.Mosaic, err = mapMosaic("mosaic", types.MosaicDTO{ID: dto.MosaicID, Amount: dto.Amount}); err != nil {
		return nil, prefixMosaicField(err)
	}
	if tx.Duration, err = requireUInt64("duration", dto.Duration); err != nil {
		return nil, err
	}
	if tx.Hash, err = requireString("hash", dto.Hash); err != nil {
		return nil, err
	}
	return tx, nil
}

func mapSecretLockTransaction(raw json.RawMessage, abs model.AbstractTransaction) (model.Transaction, error) {
	var dto types.SecretLockTransactionDTO
	if err := unmarshal(raw, &dto); err != nil {
		return nil, err
	}
	tx := &model.SecretLockTransaction{
		AbstractTransaction: abs,
	}
	var err error
	if tx.Mosaic, err = mapMosaic("mosaic", types.MosaicDTO{ID: dto.MosaicID, Amount: dto.Amount}); err != nil {
		return nil, prefixMosaicField(err)
	}
	if tx.Duration, err = requireUInt64("duration", dto.Duration); err != nil {
		return nil, err
	}
	if tx.HashType, err = mapHashType(dto.HashAlgorithm); err != nil {
		return nil, err
	}
	if tx.Secret, err = requireString("secret", dto.Secret); err != nil {
		return nil, err
	}
	if tx.Recipient, err = requireAddress("recipient", dto.Recipient); err != nil {
		return nil, err
	}
	return tx, nil
}

func mapSecretProofTransaction(raw json.RawMessage, abs model.AbstractTransaction) (model.Transaction, error) {
	var dto types.SecretProofTransactionDTO
	if err := unmarshal(raw, &dto); err != nil {
		return nil, err
	}
	tx := &model.SecretProofTransaction{
		AbstractTransaction: abs,
	}
	var err error
	if tx.HashType, err = mapHashType(dto.HashAlgorithm); err != nil {
		return nil, err
	}
	if tx.Secret, err = requireString("secret", dto.Secret); err != nil {
		return nil, err
	}
	if tx.Proof, err = requireString("proof", dto.Proof); err != nil {
		return nil, err
	}
	return tx, nil
}

func mapHashType(v *uint8) (model.HashType, error) {
	h, err := requireUint8("hashAlgorithm", v)
	if err != nil {
		return 0, err
	}
	hashType := model.HashType(h)
	if err := hashType.Validate(); err != nil {
		return 0, newDecodeError("hashAlgorithm", err)
	}
	return hashType, nil
}

// prefixMosaicField maps mosaic.id and mosaic.amount back to the flat mosaicId and amount
// fields lock transactions carry
func prefixMosaicField(err error) error {
	var de *DecodeError
	if !errors.As(err, &de) {
		return err
	}
	switch de.Field {
	case "mosaic.id":
		return newDecodeError("mosaicId", de.Err)
	case "mosaic.amount":
		return newDecodeError("amount", de.Err)
	}
	return err
}
