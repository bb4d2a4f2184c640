// Package ports defines the interfaces between layers.
// Service ports are implemented by the application layer and called by the
// inbound HTTP adapter. The store port is implemented by app/store and
// consumed by the web views and outbound notifiers, so that neither depends
// on the concrete store.
package ports
