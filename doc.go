/*
Package publicip discovers the caller's public-facing IP address by querying a
prioritized list of well-known DNS "echo" services: resolver operators which answer a
specially crafted query with the source address of the client asking. Providers are
tried strictly in catalog order, and within a provider each candidate server is tried
in turn, until one of them produces an address of the requested version.

The usual entry points are Addr, AddrV4 and AddrV6:

	ip, err := publicip.Addr(context.Background())

No state is cached and no configuration is consulted; the provider table is
compiled-in data. Everything is safe for concurrent use.
*/
package publicip
