package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	js "github.com/wcc-platform/contentschema/jsonschema"
	"github.com/wcc-platform/contentschema/schemas"
)

func newExportCmd() *cobra.Command {
	var (
		name    string
		out     string
		format  string
		withURI bool
		list    bool
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print a published JSON Schema document",
		Example: `  contentschema export --schema codeofconductSchema
  contentschema export --list`,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if list {
				for _, n := range schemas.Names() {
					fmt.Fprintln(w, n)
				}
				return nil
			}
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}
			return runExport(w, name, format, withURI)
		},
	}
	f := cmd.Flags()
	f.StringVar(&name, "schema", schemas.CodeOfConductName, "schema name")
	f.StringVarP(&out, "out", "o", "", "write to file instead of stdout")
	f.StringVar(&format, "format", "json", "output format: json or yaml")
	f.BoolVar(&withURI, "with-meta", false, "include the draft-07 $schema URI")
	f.BoolVar(&list, "list", false, "list published schema names")
	return cmd
}

func runExport(w io.Writer, name, format string, withURI bool) error {
	doc, err := schemas.Document(name)
	if err != nil {
		return err
	}
	if withURI {
		doc.SchemaURI = js.Draft07
	}
	b, err := js.Marshal(doc)
	if err != nil {
		return err
	}
	switch format {
	case "json":
		_, err = w.Write(b)
		return err
	case "yaml":
		var tree yaml.Node
		if err := yaml.Unmarshal(b, &tree); err != nil {
			return fmt.Errorf("convert to yaml: %w", err)
		}
		blockStyle(&tree)
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(&tree); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want json or yaml)", format)
	}
}

// blockStyle clears the flow and quoting styles the JSON input was parsed with
// so the encoder writes block YAML.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}
