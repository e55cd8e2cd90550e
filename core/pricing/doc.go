// Package pricing defines the vehicle feature schema of the rental pricing
// model and the narrow interface the serving layer depends on. The fitted
// model itself is an opaque capability; implementations live in infra.
package pricing
