package nemclient

import (
	. "gopkg.in/check.v1"
)

type QueryParamsSuite struct{}

var _ = Suite(&QueryParamsSuite{})

func (QueryParamsSuite) TestToURL(c *C) {
	var nilParams *QueryParams
	c.Check(nilParams.ToURL(), Equals, "")
	c.Check(nilParams.Encode(), Equals, "")
	c.Check(nilParams.Validate(), IsNil)
	c.Check((&QueryParams{}).ToURL(), Equals, "")
	c.Check(NewQueryParams(25, "").ToURL(), Equals, "?pageSize=25")
	c.Check(NewQueryParams(0, "5A0069D83F17CF0001777E05").ToURL(), Equals, "?id=5A0069D83F17CF0001777E05")
	c.Check(NewQueryParams(10, "5A00").ToURL(), Equals, "?pageSize=10&id=5A00")
	c.Check((&QueryParams{Order: OrderAsc}).ToURL(), Equals, "?order=asc")
	c.Check((&QueryParams{PageSize: 100, ID: "a b&c", Order: OrderDesc}).Encode(), Equals, "pageSize=100&id=a+b%26c&order=desc")
}

func (QueryParamsSuite) TestValidate(c *C) {
	c.Check(NewQueryParams(25, "").Validate(), IsNil)
	c.Check((&QueryParams{Order: OrderDesc}).Validate(), IsNil)
	c.Check(NewQueryParams(-1, "").Validate(), NotNil)
	c.Check((&QueryParams{Order: "random"}).Validate(), NotNil)
}
