// Package contentschema validates CMS page documents against declarative
// content schemas and publishes those schemas as draft-07 JSON Schema.
//
// The root package provides:
//
// - the Schema contract implemented by the dsl builders and the draft7 engine
// - a stable error model via Issues (JSON Pointer, code, message)
// - streaming validation via Source with duplicate-key, depth and size enforcement
//
// Design policy:
// - Keep only public APIs in the root package; put detailed implementations under internal/.
// - Place builders under dsl/, page schemas under schemas/ and the CLI under cmd/contentschema.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	v, err := contentschema.ValidateFrom(ctx, schemas.CodeOfConduct(), contentschema.JSONBytes(data))
//	doc, err := schemas.Document(schemas.CodeOfConductName)
package contentschema
