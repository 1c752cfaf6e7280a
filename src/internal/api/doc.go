// Package api provides the local REST API of the connectivity monitor.
//
// # Endpoints
//
//	GET  /api/v1/status      latest monitor snapshot
//	POST /api/v1/reconnect   one forced reconnect attempt
//	GET  /api/v1/interfaces  wireless interfaces known to the WLAN subsystem
//	GET  /api/v1/health      monitor, WLAN and internet checks
//
// Access is restricted to loopback and private subnets.
//
// # Response Format
//
// All successful responses wrap data in a "data" field:
//
//	{
//	  "data": { /* response payload */ }
//	}
//
// Error responses use the following format:
//
//	{
//	  "error": {
//	    "code": "internal_error",
//	    "message": "Human-readable error message"
//	  }
//	}
package api
