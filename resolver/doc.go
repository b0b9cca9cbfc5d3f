/*
Package resolver defines an interface and provides a concrete implementation of the
one DNS capability this module consumes: a single UDP query/response exchange with an
explicit server, built on the github.com/miekg/dns package.

The sole reason this package exists is to present the exchange as an interface which
can be mocked for testing purposes. Message construction and answer interpretation
live with the callers; only the code which reaches out to the network is here.
*/
package resolver
