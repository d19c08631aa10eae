package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-narrative/internal/repositories/story"
	"github.com/KirkDiggler/rpg-narrative/internal/sqlite"
)

var (
	importContent string
	importDB      string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Load a story YAML file into a SQLite content database",
	Long: `Validate a story document and replace the content tables of a SQLite
database with it. Without --content the embedded story is imported.

  rpg-narrative import --content story.yaml --db content.db`,
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importContent, "content", "", "story YAML file, empty for the embedded story")
	importCmd.Flags().StringVar(&importDB, "db", "content.db", "SQLite database to write")
}

func runImport(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	doc, err := loadContent(importContent)
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}

	db, err := sqlite.Open(importDB)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		_ = db.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	if err := story.Import(ctx, db, doc); err != nil {
		return fmt.Errorf("failed to import content: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d locations, %d connections, %d lines and %d events into %s\n",
		len(doc.Locations), len(doc.Connections), len(doc.Lines), len(doc.Events), importDB)
	return nil
}
