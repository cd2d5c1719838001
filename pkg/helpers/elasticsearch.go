package helpers

import (
	"crypto/tls"
	"net"
	"net/http"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
)

// DefaultJobsIndex holds job documents when ES_JOBS_INDEX is not set.
const DefaultJobsIndex = "jobs"

// NewESClient builds the Elasticsearch client backing job search. Timeouts
// stay short: if the cluster is unreachable the API answers with empty
// results rather than blocking the request.
func NewESClient(addrs []string, username, password string) (*elasticsearch.Client, error) {
	return elasticsearch.NewClient(elasticsearch.Config{
		Addresses:     addrs,
		Username:      username,
		Password:      password,
		MaxRetries:    2,
		RetryOnStatus: []int{502, 503, 504},
		Transport: &http.Transport{
			MaxIdleConnsPerHost:   4,
			ResponseHeaderTimeout: 3 * time.Second,
			TLSClientConfig:       &tls.Config{MinVersion: tls.VersionTLS12},
			DialContext:           (&net.Dialer{Timeout: 3 * time.Second}).DialContext,
		},
	})
}
