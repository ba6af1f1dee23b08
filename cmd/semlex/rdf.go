package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/c360studio/semlex/export"
	"github.com/c360studio/semlex/graph"
	"github.com/c360studio/semlex/vocabulary"
)

func newFetchCmd(current func() *app) *cobra.Command {
	var (
		accept     []string
		formatName string
	)

	cmd := &cobra.Command{
		Use:   "fetch URL",
		Short: "Fetch a resource and print its RDF graph",
		Long: `Fetch requests URL with an Accept header built from the accepted
RDF MIME types and prints the parsed graph. A resource without an RDF
representation in those types is reported on stderr and is not an error.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := export.ParseFormat(formatName)
			if err != nil {
				return err
			}

			g, err := current().fetchGraph(cmd.Context(), args[0], accept)
			if err != nil {
				return err
			}
			if g == nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "no RDF graph available for %s\n", args[0])
				return nil
			}
			return export.Write(cmd.OutOrStdout(), g, format)
		},
	}

	cmd.Flags().StringSliceVar(&accept, "accept", nil, "Accepted RDF MIME types in preference order (default from config)")
	cmd.Flags().StringVarP(&formatName, "format", "f", string(export.FormatTurtle), "Output format (turtle, ntriples, jsonld)")
	return cmd
}

func newAttrCmd(current func() *app) *cobra.Command {
	var (
		accept []string
		lang   string
	)

	cmd := &cobra.Command{
		Use:   "attr URL [PREDICATE]",
		Short: "Print the value of a predicate in a given language",
		Long: `Attr fetches URL and prints the object of PREDICATE whose language
tag equals --lang. When no object carries that tag the first object of
PREDICATE is printed instead. PREDICATE may be a full IRI or a CURIE such
as skos:prefLabel. Without PREDICATE the common label properties are tried
in turn (skos:prefLabel, rdfs:label, schema:name, dcterms:title, dc:title,
foaf:name). Nothing is printed when the resource has no graph or the
predicate is absent.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			predicates := vocabulary.LabelPredicates
			if len(args) == 2 {
				predicate, err := vocabulary.Expand(args[1])
				if err != nil {
					return err
				}
				predicates = []string{predicate}
			}

			g, err := current().fetchGraph(cmd.Context(), args[0], accept)
			if err != nil {
				return err
			}

			term := firstAttribute(g, predicates, lang)
			if term == nil {
				return nil
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), term.String())
			return err
		},
	}

	cmd.Flags().StringSliceVar(&accept, "accept", nil, "Accepted RDF MIME types in preference order (default from config)")
	cmd.Flags().StringVarP(&lang, "lang", "l", "", "Language tag to select (e.g. en, de)")
	return cmd
}

// firstAttribute returns the GetAttribute result of the first predicate
// that has one.
func firstAttribute(g *graph.Graph, predicates []string, lang string) graph.Term {
	for _, p := range predicates {
		if term := graph.GetAttribute(g, graph.IRI(p), lang); term != nil {
			return term
		}
	}
	return nil
}

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the RDF formats that can be read and written",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Readable MIME types:")
			for _, mime := range graph.DefaultRegistry.MimeTypes() {
				fmt.Fprintf(out, "  %s\n", mime)
			}
			fmt.Fprintln(out, "Output formats:")
			for _, info := range export.Formats() {
				fmt.Fprintf(out, "  %-9s %-22s %s\n", info.Name, info.MIMEType, info.Description)
			}
		},
	}
}
