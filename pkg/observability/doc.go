/*
Package observability turns store lifecycle events into Prometheus metrics and
structured log records.

Metrics and log hooks are both expressed as domain.LifecycleHooks, so they can be
combined with Chain and passed to taskboard.WithLifecycleHooks.
*/
package observability
