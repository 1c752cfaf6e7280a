// Package probe answers the two connectivity questions a poll asks: is
// there a network link, and can a known internet endpoint be reached.
//
// The link check is platform specific. On Windows it asks wininet, on Linux
// it inspects links through netlink, and elsewhere it looks at the interface
// flags the standard library reports. The internet check is either an HTTP
// GET or a DNS query, bounded by the configured timeout.
package probe
