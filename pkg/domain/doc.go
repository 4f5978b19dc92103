// Package domain contains the wire contracts of the OTP and specialties
// services: request and response shapes, the closed status enumerations and
// the default OTP client configuration. Every shape encodes to and decodes
// from JSON with go-faster/jx; optional and nullable fields use the Opt* and
// Nil* wrappers so that "absent", "null" and "zero" stay distinguishable.
package domain
