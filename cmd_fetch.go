package main

import (
	"encoding/json"
	"fmt"
	"io"

	"studio-site/config"
	"studio-site/internal/cms"
	"studio-site/internal/domain/content"

	"github.com/spf13/cobra"
)

func newFetchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch <kind>",
		Short: "Run the content pipeline once for one collection and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, ok := content.ParseKind(args[0])
			if !ok {
				return fmt.Errorf("unknown collection kind %q", args[0])
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.log.Sync() //nolint:errcheck

			site := cms.NewSite(a.pipeline())
			defer site.Close()

			site.RefreshKind(cmd.Context(), kind)
			items, _ := site.Collection(kind)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(items)
		},
	}
}

func newCollectionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "collections",
		Short: "List the configured collection ids",
		RunE: func(cmd *cobra.Command, args []string) error {
			printCollections(cmd.OutOrStdout(), config.LoadEnv())
			return nil
		},
	}
}

func printCollections(w io.Writer, cfg *config.Config) {
	for _, kind := range content.Kinds() {
		id := cfg.CollectionID(kind)
		if id == "" {
			id = "(unset)"
		}
		fmt.Fprintf(w, "%-22s %s\n", kind, id)
	}
}
