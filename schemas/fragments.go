package schemas

import (
	cs "github.com/wcc-platform/contentschema"
	"github.com/wcc-platform/contentschema/dsl"
)

// nonEmpty is the string shape used for every text slot of page content.
func nonEmpty() dsl.StringBuilder { return dsl.String().Min(1) }

var link = dsl.Object().
	Field("title", nonEmpty()).
	Field("label", nonEmpty()).
	Field("uri", nonEmpty()).
	Require("label", "uri").
	MustBuild()

var image = dsl.Object().
	Field("path", nonEmpty()).
	Field("alt", nonEmpty()).
	Field("type", nonEmpty().Describe("desktop or mobile")).
	Require("path", "alt", "type").
	MustBuild()

var section = dsl.Object().
	Field("title", nonEmpty()).
	Field("description", nonEmpty()).
	Field("link", link).
	Field("topics", dsl.Array(nonEmpty())).
	Require("title").
	MustBuild()

var heroSection = dsl.Object().
	Field("title", nonEmpty()).
	Field("description", nonEmpty()).
	Field("images", dsl.Array(image)).
	Require("title").
	MustBuild()

// Link is the shape of a call-to-action link.
func Link() cs.Schema { return link }

// Image is the shape of a responsive image reference.
func Image() cs.Schema { return image }

// Section is the generic titled page section.
func Section() cs.Schema { return section }

// HeroSection is the banner at the top of a page.
func HeroSection() cs.Schema { return heroSection }
