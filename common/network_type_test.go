package common

import (
	. "gopkg.in/check.v1"
)

type NetworkTypeSuite struct{}

var _ = Suite(&NetworkTypeSuite{})

func (s NetworkTypeSuite) TestNetworkTypeFromName(c *C) {
	testFunc := func(name string, expected NetworkType, errChecker Checker) {
		nt, err := NewNetworkTypeFromName(name)
		c.Check(err, errChecker)
		c.Check(nt, Equals, expected)
	}
	testFunc("public", MainNet, IsNil)
	testFunc("publicTest", TestNet, IsNil)
	testFunc("mijin", Mijin, IsNil)
	testFunc("mijinTest", MijinTest, IsNil)
	testFunc("MIJINTEST", MijinTest, IsNil)
	testFunc(" mijinTest ", MijinTest, IsNil)
	testFunc("notSupported", UnknownNetwork, NotNil)
	testFunc("", UnknownNetwork, NotNil)
}

func (s NetworkTypeSuite) TestNetworkTypeFromByte(c *C) {
	nt, err := NewNetworkTypeFromByte(0x90)
	c.Assert(err, IsNil)
	c.Check(nt, Equals, MijinTest)
	c.Check(nt.String(), Equals, "mijinTest")
	c.Check(nt.IsEmpty(), Equals, false)

	nt, err = NewNetworkTypeFromByte(0x68)
	c.Assert(err, IsNil)
	c.Check(nt, Equals, MainNet)

	_, err = NewNetworkTypeFromByte(0x01)
	c.Check(err, NotNil)
	c.Check(UnknownNetwork.IsEmpty(), Equals, true)
	c.Check(UnknownNetwork.Validate(), NotNil)
	c.Check(NetworkType(0x42).String(), Equals, "unknown(0x42)")

	buf, err := TestNet.MarshalJSON()
	c.Assert(err, IsNil)
	c.Check(string(buf), Equals, `"publicTest"`)
}
