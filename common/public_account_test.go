package common

import (
	"strings"

	. "gopkg.in/check.v1"
)

type PublicAccountSuite struct{}

var _ = Suite(&PublicAccountSuite{})

const testPublicKey = "1b153f8b76ef60a4bfe152f4de3698bd230bac9dc239d4e448715aa46bd58ec1"

func (s PublicAccountSuite) TestNewPublicAccount(c *C) {
	pa, err := NewPublicAccount(testPublicKey, MijinTest)
	c.Assert(err, IsNil)
	c.Check(pa.PublicKey, Equals, strings.ToUpper(testPublicKey))
	c.Check(pa.NetworkType, Equals, MijinTest)
	c.Check(pa.IsEmpty(), Equals, false)
	c.Check(pa.String(), Equals, strings.ToUpper(testPublicKey))

	same, err := NewPublicAccount(strings.ToUpper(testPublicKey), MijinTest)
	c.Assert(err, IsNil)
	c.Check(pa.Equals(same), Equals, true)
	other, err := NewPublicAccount(testPublicKey, MainNet)
	c.Assert(err, IsNil)
	c.Check(pa.Equals(other), Equals, false)

	_, err = NewPublicAccount("zz", MijinTest)
	c.Check(err, NotNil)
	_, err = NewPublicAccount(testPublicKey[:62], MijinTest)
	c.Check(err, NotNil)
	_, err = NewPublicAccount("", MijinTest)
	c.Check(err, NotNil)
	c.Check(PublicAccount{}.IsEmpty(), Equals, true)
}
