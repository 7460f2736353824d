// Package metrics defines the Prometheus collectors exported by the bridge.
//
// Collectors are registered on the default registry through promauto and served by the
// HTTP server on the configured metrics path.
//
//   - oss_bridge_storage_operations_total{operation,status}
//   - oss_bridge_storage_operation_duration_seconds{operation}
package metrics
