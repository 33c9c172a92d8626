// Package api implements the resource clients for the Passage
// management API. Each exported function performs exactly one HTTP
// round trip against the app-scoped base path and returns either a
// typed response or one of three typed failures: *TransportError,
// *DecodeError, or *ResponseError. Classification of those failures
// into the SDK's public error taxonomy happens in the root package.
package api
