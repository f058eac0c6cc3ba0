// Package services implements the driving port interfaces.
// Services contain the core business logic: the client facade that
// presents one stable interface over the active transport, and the
// polling monitor that turns result snapshots into change events.
//
// Services are pure Go and depend only on the ports and domain.
package services
