package observability

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

// Metrics publishes counters and timers to CloudWatch. Publishing is
// fire-and-forget; a metrics failure must never fail a request.
type Metrics struct {
	namespace string
	client    *cloudwatch.Client
	enabled   bool
}

// NewMetrics creates a CloudWatch-backed metrics sink
func NewMetrics(namespace string, client *cloudwatch.Client) *Metrics {
	return &Metrics{
		namespace: namespace,
		client:    client,
		enabled:   client != nil,
	}
}

// NewNoopMetrics creates a metrics sink that records nothing
func NewNoopMetrics() *Metrics {
	return &Metrics{enabled: false}
}

// Increment emits a count-1 datum for the metric with the given label
func (m *Metrics) Increment(metric, label string) {
	m.put(metric, label, 1, types.StandardUnitCount)
}

// Timer measures a duration until Stop is called
type Timer struct {
	metrics *Metrics
	metric  string
	label   string
	start   time.Time
}

// StartTimer begins timing an operation
func (m *Metrics) StartTimer(metric, label string) *Timer {
	return &Timer{metrics: m, metric: metric, label: label, start: time.Now()}
}

// Stop emits the elapsed milliseconds
func (t *Timer) Stop() {
	elapsed := float64(time.Since(t.start).Milliseconds())
	t.metrics.put(t.metric, t.label, elapsed, types.StandardUnitMilliseconds)
}

func (m *Metrics) put(metric, label string, value float64, unit types.StandardUnit) {
	if !m.enabled {
		return
	}

	datum := types.MetricDatum{
		MetricName: aws.String(metric),
		Value:      aws.Float64(value),
		Unit:       unit,
		Timestamp:  aws.Time(time.Now()),
		Dimensions: []types.Dimension{
			{Name: aws.String("Operation"), Value: aws.String(label)},
		},
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		// Errors are dropped on purpose; there is no good place to report them.
		m.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
			Namespace:  aws.String(m.namespace),
			MetricData: []types.MetricDatum{datum},
		})
	}()
}
