// Package schemas declares the CMS page content schemas.
//
// Every schema is registered under the name it is published with (for example
// "codeofconductSchema") and exposed as a Document of the form
//
//	{"$ref": "#/definitions/<name>", "definitions": {"<name>": {...}}}
//
// Shared shapes (link, image, section, hero section) are declared once and
// embedded by value into the pages that use them. All values in this package
// are built at init time and never modified afterwards.
package schemas
