package config

import (
	"github.com/olivere/elastic/v7"
)

// SetupElasticSearch connects to the cluster at ELASTIC_URL. Sniffing is off
// since clusters behind a load balancer or in docker advertise unreachable
// node addresses.
func SetupElasticSearch(cfg *Config, options ...elastic.ClientOptionFunc) (*elastic.Client, error) {
	options = append([]elastic.ClientOptionFunc{
		elastic.SetURL(cfg.Elastic.URL),
		elastic.SetSniff(false),
	}, options...)

	return elastic.NewClient(options...)
}
