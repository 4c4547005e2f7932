package metrics

import (
	"fmt"

	prom "github.com/prometheus/client_golang/prometheus"
)

// WriteTextfile dumps the registry to path in Prometheus textfile-collector
// format. Batch runs have no endpoint to scrape; the node_exporter textfile
// collector picks the file up instead.
func WriteTextfile(path string, reg *prom.Registry) error {
	if err := prom.WriteToTextfile(path, reg); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
