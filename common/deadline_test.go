package common

import (
	"math"
	"time"

	. "gopkg.in/check.v1"
)

type DeadlineSuite struct{}

var _ = Suite(&DeadlineSuite{})

func (s DeadlineSuite) TestDeadline(c *C) {
	c.Check(Deadline(0).Time().Equal(NemesisEpoch), Equals, true)
	d := Deadline(1000)
	c.Check(d.Time().Equal(NemesisEpoch.Add(time.Second)), Equals, true)
	c.Check(d.String(), Equals, "2016-04-01T00:00:01Z")
	c.Check(Deadline(1459468800000).Time().Year(), Equals, 2062)
}

func (s DeadlineSuite) TestDeadlineOutOfRange(c *C) {
	far := Deadline(10000000000000000).Time()
	c.Check(far.Year() > 300000, Equals, true)
	c.Check(far.After(NemesisEpoch), Equals, true)

	clamped := Deadline(math.MaxUint64).Time()
	c.Check(clamped.Equal(maxDeadline.Time()), Equals, true)
	c.Check(clamped.After(far), Equals, true)
	c.Check(Deadline(uint64(maxDeadline)+1).Time().Equal(clamped), Equals, true)
}
