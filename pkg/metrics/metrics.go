package metrics

type nrContextKey string

// NewRelicContextKey is the context key under which the New Relic
// application is made available to event recording.
const NewRelicContextKey nrContextKey = "newrelic_application"
