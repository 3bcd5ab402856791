package common

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	. "gopkg.in/check.v1"
)

type RetryableHTTPLoggerSuite struct{}

var _ = Suite(&RetryableHTTPLoggerSuite{})

func (s RetryableHTTPLoggerSuite) TestFields(c *C) {
	buf := &bytes.Buffer{}
	logger := NewRetryableHTTPLogger(zerolog.New(buf).Level(zerolog.DebugLevel))
	uri, err := url.Parse("http://localhost:3000/chain/height")
	c.Assert(err, IsNil)

	logger.Debug("performing request", "method", "GET", "url", uri, "wait", time.Second, "attempt", 1)
	var line map[string]interface{}
	c.Assert(json.Unmarshal(buf.Bytes(), &line), IsNil)
	c.Check(line["message"], Equals, "performing request")
	c.Check(line["method"], Equals, "GET")
	c.Check(line["url"], Equals, "http://localhost:3000/chain/height")
	c.Check(line["wait"], Equals, "1s")
	c.Check(line["attempt"], Equals, float64(1))

	buf.Reset()
	logger.Error("request failed", "error", errors.New("connection refused"), "dangling")
	line = map[string]interface{}{}
	c.Assert(json.Unmarshal(buf.Bytes(), &line), IsNil)
	c.Check(line["error"], Equals, "connection refused")
	c.Check(line["extra"], Equals, "dangling")
}
