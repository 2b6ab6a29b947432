package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stacmeta/stacube/stac"
)

// extensionHost is satisfied by Items and Collections.
type extensionHost interface {
	stac.Object
	HasExtension(uri string) bool
	AddExtension(uri string)
	RemoveExtension(uri string)
}

func newExtensionsCmd(ctx *cliContext) *cobra.Command {
	var (
		addURIs    []string
		removeURIs []string
		write      bool
	)
	cmd := &cobra.Command{
		Use:   "extensions <file>",
		Short: "List or edit the extension declarations of a document",
		Long: `extensions prints the stac_extensions of a document. With --add or
--remove the list is changed and, with --write, the file is rewritten
in place. Deprecated extension identifiers are upgraded to their
schema URIs on read.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			obj, err := stac.ReadFile(args[0])
			if err != nil {
				return err
			}
			host, ok := obj.(extensionHost)
			if !ok {
				return fmt.Errorf("%s documents carry no extension declarations", obj.Kind())
			}
			for _, uri := range addURIs {
				host.AddExtension(uri)
			}
			for _, uri := range removeURIs {
				host.RemoveExtension(uri)
			}

			out := cmd.OutOrStdout()
			uris := extensionList(host)
			if len(uris) == 0 {
				fmt.Fprintln(out, "no extensions declared")
			}
			for _, uri := range uris {
				fmt.Fprintln(out, uri)
			}

			if write && (len(addURIs) > 0 || len(removeURIs) > 0) {
				return stac.WriteFile(args[0], obj)
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&addURIs, "add", nil, "declare an extension schema URI")
	cmd.Flags().StringArrayVar(&removeURIs, "remove", nil, "drop an extension schema URI")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write changes back to the file")
	return cmd
}

func extensionList(host extensionHost) []string {
	switch h := host.(type) {
	case *stac.Item:
		return h.StacExtensions
	case *stac.Collection:
		return h.StacExtensions
	default:
		return nil
	}
}
