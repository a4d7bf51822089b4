// Package openapi derives form schemas from the request bodies of OpenAPI 3
// operations, so an endpoint's payload shape can drive a bound form.
package openapi
