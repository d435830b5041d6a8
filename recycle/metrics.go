package recycle

import "github.com/prometheus/client_golang/prometheus"

var (
	generatedDesc = prometheus.NewDesc(
		"streamdispatch_pool_generated_total",
		"Values constructed by the pool because its free list was empty",
		[]string{"pool"}, nil,
	)
	returnedDesc = prometheus.NewDesc(
		"streamdispatch_pool_returned_total",
		"Values released back to the pool",
		[]string{"pool"}, nil,
	)
	capacityDesc = prometheus.NewDesc(
		"streamdispatch_pool_capacity",
		"Soft capacity of the pool",
		[]string{"pool"}, nil,
	)
	sizeDesc = prometheus.NewDesc(
		"streamdispatch_pool_size",
		"Idle values currently held by the pool",
		[]string{"pool"}, nil,
	)
)

type collector struct {
	reg *Registry
}

// Collector returns a prometheus.Collector reporting the stats of every
// pool in reg at scrape time.
func Collector(reg *Registry) prometheus.Collector {
	if reg == nil {
		reg = Default()
	}
	return &collector{reg: reg}
}

func (c *collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- generatedDesc
	ch <- returnedDesc
	ch <- capacityDesc
	ch <- sizeDesc
}

func (c *collector) Collect(ch chan<- prometheus.Metric) {
	for _, s := range c.reg.Pools() {
		ch <- prometheus.MustNewConstMetric(generatedDesc, prometheus.CounterValue, float64(s.Generated), s.Name)
		ch <- prometheus.MustNewConstMetric(returnedDesc, prometheus.CounterValue, float64(s.Returned), s.Name)
		ch <- prometheus.MustNewConstMetric(capacityDesc, prometheus.GaugeValue, float64(s.Capacity), s.Name)
		ch <- prometheus.MustNewConstMetric(sizeDesc, prometheus.GaugeValue, float64(s.Size), s.Name)
	}
}
