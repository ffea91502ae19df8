// Package kernel contains the shared value objects of the logistics domain:
// entity identifiers, the closed set of Bolivian departments, geographic
// points and phone numbers. Value objects are immutable, validate themselves
// on construction and are safe to pass by value.
package kernel
