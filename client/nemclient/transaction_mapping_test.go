package nemclient

import (
	"encoding/json"
	"io/ioutil"

	"github.com/pkg/errors"
	. "gopkg.in/check.v1"

	"gitlab.com/nem2/catapult-sdk/common"
	"gitlab.com/nem2/catapult-sdk/model"
)

const (
	testSigner      = "B4F12E7C9F6946091E2CB8B6D3A12B50D17CCBBF646386EA27CE2946A7423DCF"
	testCosignatory = "1B153F8B76EF60A4BFE152F4DE3698BD230BAC9DC239D4E448715AA46BD58EC1"
	testRecipient   = "SD5DT3CH4BLABL5HIMEKP2TAPUKF4NY3L5HRIR54"
	testMosaicID    = "15358872602548358953"
	testNamespaceID = "9562080086528621131"
)

type TransactionMappingSuite struct {
	txs []model.Transaction
}

var _ = Suite(&TransactionMappingSuite{})

func (s *TransactionMappingSuite) SetUpSuite(c *C) {
	buf, err := ioutil.ReadFile(fixtureFolder + "block/1_transactions.json")
	c.Assert(err, IsNil)
	s.txs, err = mapTransactions(buf)
	c.Assert(err, IsNil)
	c.Assert(s.txs, HasLen, 11)
}

func (s *TransactionMappingSuite) checkAbstract(c *C, abs *model.AbstractTransaction, txType model.TransactionType, version uint8) {
	c.Check(abs.Type, Equals, txType)
	c.Check(abs.NetworkType, Equals, common.MijinTest)
	c.Check(abs.Version, Equals, version)
	c.Check(abs.Signer.PublicKey, Equals, testSigner)
	c.Check(abs.Signer.NetworkType, Equals, common.MijinTest)
	c.Check(abs.TransactionInfo, NotNil)
	c.Check(abs.TransactionInfo.Height.Uint64(), Equals, uint64(1))
}

func (s *TransactionMappingSuite) TestTransfer(c *C) {
	tx, ok := s.txs[0].(*model.TransferTransaction)
	c.Assert(ok, Equals, true)
	s.checkAbstract(c, tx.GetAbstractTransaction(), model.TransferType, 3)
	c.Check(tx.Fee.Uint64(), Equals, uint64(0))
	c.Check(tx.Deadline, Equals, common.Deadline(1459468800000))
	c.Check(tx.Signature, HasLen, 128)
	c.Check(tx.TransactionInfo.ID, Equals, "5A0069D83F17CF0001777E00")
	c.Check(tx.TransactionInfo.Hash, Equals, "00000000000000000000000000000000000000000000000000000000000000A0")
	c.Check(tx.TransactionInfo.IsAggregateInner(), Equals, false)
	c.Check(tx.Recipient.String(), Equals, testRecipient)
	c.Assert(tx.Mosaics, HasLen, 1)
	c.Check(tx.Mosaics[0].ID.String(), Equals, testMosaicID)
	c.Check(tx.Mosaics[0].IDHex(), Equals, "D525AD41D95FCF29")
	c.Check(tx.Mosaics[0].Amount.Uint64(), Equals, uint64(10000000))
	c.Check(tx.Message.Type, Equals, model.PlainMessage)
	c.Check(tx.Message.Payload, Equals, "Hello catapult")
}

func (s *TransactionMappingSuite) TestRegisterNamespace(c *C) {
	tx, ok := s.txs[1].(*model.RegisterNamespaceTransaction)
	c.Assert(ok, Equals, true)
	s.checkAbstract(c, tx.GetAbstractTransaction(), model.RegisterNamespaceType, 2)
	c.Check(tx.NamespaceType, Equals, model.RootNamespace)
	c.Check(tx.NamespaceName, Equals, "nem")
	c.Check(tx.NamespaceID.String(), Equals, testNamespaceID)
	c.Check(tx.Duration.Uint64(), Equals, uint64(1000))
	c.Check(tx.ParentID, IsNil)
}

func (s *TransactionMappingSuite) TestMosaicDefinition(c *C) {
	tx, ok := s.txs[2].(*model.MosaicDefinitionTransaction)
	c.Assert(ok, Equals, true)
	s.checkAbstract(c, tx.GetAbstractTransaction(), model.MosaicDefinitionType, 2)
	c.Check(tx.NamespaceID.String(), Equals, testNamespaceID)
	c.Check(tx.MosaicID.String(), Equals, testMosaicID)
	c.Check(tx.MosaicName, Equals, "xem")
	c.Check(tx.MosaicProperties.SupplyMutable, Equals, false)
	c.Check(tx.MosaicProperties.Transferable, Equals, true)
	c.Check(tx.MosaicProperties.LevyMutable, Equals, false)
	c.Check(tx.MosaicProperties.Divisibility, Equals, uint8(6))
	c.Check(tx.MosaicProperties.Duration.Uint64(), Equals, uint64(0))
}

func (s *TransactionMappingSuite) TestMosaicSupplyChange(c *C) {
	tx, ok := s.txs[3].(*model.MosaicSupplyChangeTransaction)
	c.Assert(ok, Equals, true)
	s.checkAbstract(c, tx.GetAbstractTransaction(), model.MosaicSupplyChangeType, 2)
	c.Check(tx.MosaicID.String(), Equals, testMosaicID)
	c.Check(tx.SupplyType, Equals, model.IncreaseSupply)
	c.Check(tx.Delta.Uint64(), Equals, uint64(100000))
}

func (s *TransactionMappingSuite) TestModifyMultisigAccount(c *C) {
	tx, ok := s.txs[4].(*model.ModifyMultisigAccountTransaction)
	c.Assert(ok, Equals, true)
	s.checkAbstract(c, tx.GetAbstractTransaction(), model.ModifyMultisigAccountType, 3)
	c.Check(tx.MinApprovalDelta, Equals, int8(1))
	c.Check(tx.MinRemovalDelta, Equals, int8(1))
	c.Assert(tx.Modifications, HasLen, 1)
	c.Check(tx.Modifications[0].Type, Equals, model.AddCosignatory)
	c.Check(tx.Modifications[0].Cosignatory.PublicKey, Equals, testCosignatory)
	c.Check(tx.Modifications[0].Cosignatory.NetworkType, Equals, common.MijinTest)
}

func (s *TransactionMappingSuite) TestAggregateComplete(c *C) {
	tx, ok := s.txs[5].(*model.AggregateTransaction)
	c.Assert(ok, Equals, true)
	s.checkAbstract(c, tx.GetAbstractTransaction(), model.AggregateCompleteType, 2)
	c.Check(tx.Cosignatures, HasLen, 0)
	c.Assert(tx.InnerTransactions, HasLen, 1)
	inner, ok := tx.InnerTransactions[0].(*model.TransferTransaction)
	c.Assert(ok, Equals, true)
	s.checkAbstract(c, inner.GetAbstractTransaction(), model.TransferType, 3)
	c.Check(inner.Fee, IsNil)
	c.Check(inner.Deadline, Equals, common.Deadline(0))
	c.Check(inner.Signature, Equals, "")
	c.Check(inner.TransactionInfo.IsAggregateInner(), Equals, true)
	c.Check(inner.TransactionInfo.AggregateID, Equals, "5A0069D83F17CF0001777E05")
	c.Check(inner.Recipient.String(), Equals, testRecipient)
	c.Check(inner.Mosaics, HasLen, 0)
	c.Check(inner.Message.Payload, Equals, "")
}

func (s *TransactionMappingSuite) TestAggregateBonded(c *C) {
	tx, ok := s.txs[6].(*model.AggregateTransaction)
	c.Assert(ok, Equals, true)
	s.checkAbstract(c, tx.GetAbstractTransaction(), model.AggregateBondedType, 2)
	c.Assert(tx.Cosignatures, HasLen, 1)
	c.Check(tx.Cosignatures[0].Signer.PublicKey, Equals, testCosignatory)
	c.Check(tx.Cosignatures[0].Signature, HasLen, 128)
	c.Assert(tx.InnerTransactions, HasLen, 1)
	inner, ok := tx.InnerTransactions[0].(*model.RegisterNamespaceTransaction)
	c.Assert(ok, Equals, true)
	c.Check(inner.NamespaceType, Equals, model.SubNamespace)
	c.Check(inner.NamespaceName, Equals, "subnem")
	c.Check(inner.NamespaceID.Uint64(), Equals, uint64(8589934593))
	c.Check(inner.ParentID.String(), Equals, testNamespaceID)
	c.Check(inner.Duration, IsNil)
}

func (s *TransactionMappingSuite) TestLockFunds(c *C) {
	tx, ok := s.txs[7].(*model.LockFundsTransaction)
	c.Assert(ok, Equals, true)
	s.checkAbstract(c, tx.GetAbstractTransaction(), model.LockFundsType, 1)
	c.Check(tx.Mosaic.ID.String(), Equals, testMosaicID)
	c.Check(tx.Mosaic.Amount.Uint64(), Equals, uint64(10000000))
	c.Check(tx.Duration.Uint64(), Equals, uint64(100))
	c.Check(tx.Hash, Equals, "00000000000000000000000000000000000000000000000000000000000000D0")
}

func (s *TransactionMappingSuite) TestSecretLock(c *C) {
	tx, ok := s.txs[8].(*model.SecretLockTransaction)
	c.Assert(ok, Equals, true)
	s.checkAbstract(c, tx.GetAbstractTransaction(), model.SecretLockType, 1)
	c.Check(tx.Mosaic.Amount.Uint64(), Equals, uint64(10))
	c.Check(tx.Duration.Uint64(), Equals, uint64(100))
	c.Check(tx.HashType, Equals, model.SHA3_512)
	c.Check(tx.Secret, HasLen, 128)
	c.Check(tx.Recipient.String(), Equals, testRecipient)
}

func (s *TransactionMappingSuite) TestSecretProof(c *C) {
	tx, ok := s.txs[9].(*model.SecretProofTransaction)
	c.Assert(ok, Equals, true)
	s.checkAbstract(c, tx.GetAbstractTransaction(), model.SecretProofType, 1)
	c.Check(tx.HashType, Equals, model.SHA3_512)
	c.Check(tx.Secret, HasLen, 128)
	c.Check(tx.Proof, Equals, "B778A39A3663719DFC5E48C9D78431B1E45C2AF9DF538782BF199C189DABEAC7")
}

func (s *TransactionMappingSuite) TestUnknown(c *C) {
	tx, ok := s.txs[10].(*model.UnknownTransaction)
	c.Assert(ok, Equals, true)
	c.Check(tx.Type, Equals, model.TransactionType(16720))
	c.Check(tx.TransactionInfo.Index, Equals, uint32(10))
	var raw map[string]interface{}
	c.Assert(json.Unmarshal(tx.Raw, &raw), IsNil)
	c.Check(raw["fee"], Equals, "whatever")
}

func (s *TransactionMappingSuite) TestMappingFailures(c *C) {
	testFunc := func(input, field string) {
		_, err := mapTransaction(json.RawMessage(input))
		c.Assert(err, NotNil, Commentf("input: %s", input))
		var de *DecodeError
		c.Assert(errors.As(err, &de), Equals, true)
		c.Check(de.Field, Equals, field, Commentf("input: %s", input))
	}
	header := `"version":36866,"fee":[0,0],"deadline":[1,0],"signature":"AA","signer":"` + testSigner + `"`
	meta := `"meta":{"height":[1,0],"index":0,"id":"1"}`
	testFunc(`{`+meta+`}`, "transaction")
	testFunc(`{"transaction":{"type":16724}}`, "meta")
	testFunc(`{`+meta+`,"transaction":{"version":36866}}`, "transaction.type")
	testFunc(`{`+meta+`,"transaction":{"type":70000}}`, "transaction.type")
	testFunc(`{`+meta+`,"transaction":{"type":16724,"fee":[0,0],"deadline":[1,0],"signer":"`+testSigner+`"}}`, "transaction.version")
	testFunc(`{`+meta+`,"transaction":{"type":16724,"version":65536,"fee":[0,0],"deadline":[1,0],"signer":"`+testSigner+`"}}`, "transaction.version")
	testFunc(`{`+meta+`,"transaction":{"type":16724,"version":4099,"fee":[0,0],"deadline":[1,0],"signer":"`+testSigner+`"}}`, "transaction.version")
	testFunc(`{`+meta+`,"transaction":{"type":16724,"version":36867,"deadline":[1,0],"signer":"`+testSigner+`"}}`, "transaction.fee")
	testFunc(`{`+meta+`,"transaction":{"type":16724,"version":36867,"fee":[0,0],"signer":"`+testSigner+`"}}`, "transaction.deadline")
	testFunc(`{`+meta+`,"transaction":{"type":16724,"version":36867,"fee":[0,0],"deadline":[1,0],"signer":"`+testSigner+`"}}`, "transaction.signature")
	testFunc(`{`+meta+`,"transaction":{"type":16724,"version":36867,"fee":[0,0],"deadline":[1,0],"signer":"ABCD"}}`, "transaction.signer")
	testFunc(`{`+meta+`,"transaction":{"type":16724,`+header+`,"recipient":"90FA39EC47E05600AFA74308A7EA607D145E371B5F4F1447BC","mosaics":[{"id":[1,0]}]}}`, "transaction.mosaics[0].amount")
	testFunc(`{`+meta+`,"transaction":{"type":16724,`+header+`,"recipient":"90FA39EC47E05600AFA74308A7EA607D145E371B5F4F1447BC","message":{"type":0,"payload":"zz"}}}`, "transaction.message.payload")
	testFunc(`{`+meta+`,"transaction":{"type":16718,`+header+`,"namespaceType":0,"name":"nem","namespaceId":[1,0]}}`, "transaction.duration")
	testFunc(`{`+meta+`,"transaction":{"type":16718,`+header+`,"namespaceType":1,"name":"nem","namespaceId":[1,0]}}`, "transaction.parentId")
	testFunc(`{`+meta+`,"transaction":{"type":16718,`+header+`,"namespaceType":2,"name":"nem","namespaceId":[1,0]}}`, "transaction.namespaceType")
	testFunc(`{`+meta+`,"transaction":{"type":16717,`+header+`,"parentId":[1,0],"mosaicId":[1,0],"name":"xem","properties":[[2,0]]}}`, "transaction.properties")
	testFunc(`{`+meta+`,"transaction":{"type":16717,`+header+`,"parentId":[1,0],"mosaicId":[1,0],"name":"xem","properties":[[2,0],[256,0],[0,0]]}}`, "transaction.properties[1]")
	testFunc(`{`+meta+`,"transaction":{"type":16973,`+header+`,"mosaicId":[1,0],"direction":2,"delta":[1,0]}}`, "transaction.direction")
	testFunc(`{`+meta+`,"transaction":{"type":16725,`+header+`,"modifications":[{"type":0}]}}`, "transaction.modifications[0].cosignatoryPublicKey")
	testFunc(`{`+meta+`,"transaction":{"type":16725,`+header+`,"modifications":[{"type":3,"cosignatoryPublicKey":"`+testCosignatory+`"}]}}`, "transaction.modifications[0].type")
	testFunc(`{`+meta+`,"transaction":{"type":16705,`+header+`,"transactions":[{"meta":{"aggregateId":"1"},"transaction":{"type":16724,"version":36867,"signer":"`+testSigner+`"}}]}}`, "transaction.transactions[0].transaction.recipient")
	testFunc(`{`+meta+`,"transaction":{"type":16961,`+header+`,"transactions":[],"cosignatures":[{"signature":"AA"}]}}`, "transaction.cosignatures[0].signer")
	testFunc(`{`+meta+`,"transaction":{"type":16712,`+header+`,"amount":[1,0],"duration":[1,0],"hash":"AA"}}`, "transaction.mosaicId")
	testFunc(`{`+meta+`,"transaction":{"type":16712,`+header+`,"mosaicId":[1,0],"duration":[1,0],"hash":"AA"}}`, "transaction.amount")
	testFunc(`{`+meta+`,"transaction":{"type":16722,`+header+`,"mosaicId":[1,0],"amount":[1,0],"duration":[1,0],"hashAlgorithm":9,"secret":"AA","recipient":"90FA39EC47E05600AFA74308A7EA607D145E371B5F4F1447BC"}}`, "transaction.hashAlgorithm")
	testFunc(`{`+meta+`,"transaction":{"type":16978,`+header+`,"hashAlgorithm":0,"secret":"AA"}}`, "transaction.proof")
}

func (s *TransactionMappingSuite) TestMapTransactionsPreservesOrder(c *C) {
	buf, err := ioutil.ReadFile(fixtureFolder + "block/1_transactions.json")
	c.Assert(err, IsNil)
	again, err := mapTransactions(buf)
	c.Assert(err, IsNil)
	c.Assert(again, HasLen, len(s.txs))
	for i := range again {
		c.Check(again[i].GetAbstractTransaction().TransactionInfo.ID, Equals, s.txs[i].GetAbstractTransaction().TransactionInfo.ID)
	}
	c.Check(again, DeepEquals, s.txs)

	txs, err := mapTransactions([]byte(`[]`))
	c.Assert(err, IsNil)
	c.Check(txs, HasLen, 0)

	_, err = mapTransactions([]byte(`null`))
	c.Check(err, NotNil)
}
