package schemas

import (
	cs "github.com/wcc-platform/contentschema"
	"github.com/wcc-platform/contentschema/dsl"
)

// The items slots below use the positional (tuple) form of "items", exactly as
// the published document has always declared them. Under draft-07 only the
// first element of each list is checked against the item shape.
//
// TODO: switch both slots to dsl.Array once consumers confirm that every
// element, not only the first, is meant to be checked.
var conductItem = dsl.Object().
	Field("title", nonEmpty()).
	Field("description", nonEmpty()).
	Field("link", link).
	Field("items", dsl.Tuple(nonEmpty())).
	Require("title").
	MustBuild()

var codeOfConduct = dsl.Object().
	Field("id", nonEmpty()).
	Field("heroSection", heroSection).
	Field("page", section).
	Field("items", dsl.Tuple(conductItem)).
	Require("id", "heroSection", "page", "items").
	UnknownStrict().
	MustBuild()

// Stored pages are held to every element of both lists, so anything the CMS
// accepts also decodes into page.CodeOfConduct.
var conductItemEach = dsl.Object().
	Field("title", nonEmpty()).
	Field("description", nonEmpty()).
	Field("link", link).
	Field("items", dsl.Array(nonEmpty())).
	Require("title").
	MustBuild()

var codeOfConductEach = dsl.Object().
	Field("id", nonEmpty()).
	Field("heroSection", heroSection).
	Field("page", section).
	Field("items", dsl.Array(conductItemEach)).
	Require("id", "heroSection", "page", "items").
	UnknownStrict().
	MustBuild()

// CodeOfConduct is the schema of the code of conduct page document.
func CodeOfConduct() cs.Schema { return codeOfConduct }

// ConductItem is the schema of one entry in the code of conduct list.
func ConductItem() cs.Schema { return conductItem }

// CodeOfConductEveryItem is CodeOfConduct with every list element checked
// against the item shape. It is not published.
func CodeOfConductEveryItem() cs.Schema { return codeOfConductEach }
