// Package api handles incoming HTTP requests, request validation and
// response formatting. Handlers translate HTTP concerns into service calls
// and translate service errors back into status codes.
//
// Every failed request produces one JSON error body of the form
// {"error": ..., "trace_id": ...} and one entry in the error audit trail.
package api
