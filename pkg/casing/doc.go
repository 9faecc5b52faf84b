// Package casing converts action type names such as "APP_LOADED" or
// "user-signed-in" into camelCase identifiers.
//
// Input is split into words on every rune that is not a letter or digit and
// on case boundaries ("fooBar" → "foo", "Bar"; "XMLHttp" → "XML", "Http").
// Digits stay attached to the word they follow. The first word is lowercased
// and every following word is title-cased using golang.org/x/text/cases, so
// non-ASCII letters are handled with proper Unicode case mapping.
//
// # Usage
//
//	import "github.com/dmitrymomot/actionkit/pkg/casing"
//
//	casing.CamelCase("APP_LOADED")                  // "appLoaded"
//	casing.CamelCase("user-signed-in")              // "userSignedIn"
//	casing.CamelCase("fetch users", casing.UpperFirst(true)) // "FetchUsers"
//
// Namespaced type strings keep their separator and camel-case each segment
// on its own:
//
//	casing.NamespacedCamelCase("APP/DATA_LOADED", "/") // "app/dataLoaded"
//
// # Concurrency
//
// All functions are safe for concurrent use. Casers from x/text are stateful,
// so a fresh one is created per call.
package casing
