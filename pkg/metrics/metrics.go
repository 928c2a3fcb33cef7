package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	EventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bus_events_published_total",
			Help: "Number of events published to the in-process bus",
		},
		[]string{"event"},
	)
	EventHandlerPanics = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bus_handler_panics_total",
			Help: "Number of event handler panics isolated by the bus",
		},
		[]string{"event"},
	)
)

var (
	CartItems = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cart_items",
			Help: "Number of products currently in the cart",
		},
	)
	CartTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cart_total_synapses",
			Help: "Current cart total in synapses",
		},
	)
)

var (
	APIRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shop_api_requests_total",
			Help: "Shop API requests by operation and outcome",
		},
		[]string{"op", "outcome"}, // op: get_products|submit_order; outcome: ok|network|validation|auth|server
	)
	OrdersSubmitted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_submitted_total",
			Help: "Checkout submissions by status",
		},
		[]string{"status"}, // ok|failed
	)
)

func MustRegister() {
	prometheus.MustRegister(
		EventsPublished, EventHandlerPanics,
		CartItems, CartTotal,
		APIRequests, OrdersSubmitted,
	)
}
