// Package unspsc is the fixed classification registry used to tag mutual-aid
// messages. It maps 8-digit codes, modeled on the UNSPSC standard, to
// descriptions and enforces the message policy: a REQUEST may reference any
// registry code, while a RESPONSE (an offer) may not reference a code in a
// restricted professional-service segment.
//
// The registry is compiled in and never changes at runtime. Lookups and
// predicates are total: malformed and unknown codes are both reported as
// absent, and predicates return false instead of failing.
package unspsc
