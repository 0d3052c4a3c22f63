package wallconnector

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/jake-scott/tesla-wallmon/internal/pkg/logging"
)

const defaultTimeout = time.Second * 10

// Live talks to a real wall connector over its plaintext local HTTP
// API.  The device requires no authentication.
type Live struct {
	addr    string
	timeout time.Duration
}

func NewLiveClient(addr string) *Live {
	return &Live{
		addr:    addr,
		timeout: defaultTimeout,
	}
}

func (c *Live) WithTimeout(d time.Duration) StatusAPI {
	nc := *c
	if d > 0 {
		nc.timeout = d
	}
	return &nc
}

// get fetches one endpoint and decodes the body into target. The raw
// body is returned so callers can log it undecoded. Exactly one
// request is made - retrying is the caller's business.
func (c *Live) get(ctx context.Context, endpoint string, target interface{}) ([]byte, error) {
	url := fmt.Sprintf("http://%s/api/1/%s", c.addr, endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	logging.Logger().Debugf("fetching %s", url)

	client := &http.Client{Timeout: c.timeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &DeviceError{Endpoint: endpoint, StatusCode: resp.StatusCode}
	}

	if err := json.Unmarshal(body, target); err != nil {
		return nil, &DecodeError{Endpoint: endpoint, Err: err}
	}

	return body, nil
}

func (c *Live) Vitals(ctx context.Context) (*VitalsSnapshot, []byte, error) {
	var v VitalsSnapshot
	body, err := c.get(ctx, "vitals", &v)
	if err != nil {
		return nil, nil, err
	}

	return &v, body, nil
}

func (c *Live) Lifetime(ctx context.Context) (*LifetimeStats, []byte, error) {
	var l LifetimeStats
	body, err := c.get(ctx, "lifetime", &l)
	if err != nil {
		return nil, nil, err
	}

	return &l, body, nil
}

func (c *Live) Version(ctx context.Context) (*VersionInfo, []byte, error) {
	var v VersionInfo
	body, err := c.get(ctx, "version", &v)
	if err != nil {
		return nil, nil, err
	}

	return &v, body, nil
}

func (c *Live) WifiStatus(ctx context.Context) (*WifiStatus, []byte, error) {
	var w WifiStatus
	body, err := c.get(ctx, "wifi_status", &w)
	if err != nil {
		return nil, nil, err
	}

	return &w, body, nil
}
