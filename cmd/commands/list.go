package commands

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/orcaflat/orcaflat/internal/cli"
	"github.com/orcaflat/orcaflat/pkg/models"
	"github.com/orcaflat/orcaflat/pkg/search"
	"github.com/orcaflat/orcaflat/pkg/store"
)

// ListResult represents the output structure for list command
type ListResult struct {
	Type  string     `json:"type" yaml:"type"`
	Items []ListItem `json:"items" yaml:"items"`
	Count int        `json:"count" yaml:"count"`
}

// ListItem represents a single item in the list
type ListItem struct {
	Name   string `json:"name" yaml:"name"`
	Type   string `json:"type" yaml:"type"`
	Source string `json:"source" yaml:"source"`
	Path   string `json:"path,omitempty" yaml:"path,omitempty"`
}

var (
	listShowPaths bool
	listFilter    string
)

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [type]",
		Short: "List available profiles",
		Long: `List profiles found in the configured OrcaSlicer directories,
grouped by source (user, system vendor, or samples).

Types:
  filament  - List only filament profiles
  machine   - List only machine profiles
  process   - List only process profiles
  all       - List everything (default)

Examples:
  # List all profiles
  orcaflat list

  # List only filament profiles
  orcaflat list filament

  # List with file paths, as JSON
  orcaflat list machine --paths -o json

  # Filter with a search query
  orcaflat list --filter 'type:filament inherits:common PLA'`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"filament", "machine", "process", "all"},
		RunE:      runList,
	}

	cmd.Flags().BoolVar(&listShowPaths, "paths", false, "Show file paths")
	cmd.Flags().StringVar(&listFilter, "filter", "", "Filter with a search query (name, type:, source:, inherits:, key:)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	st, err := newStore()
	if err != nil {
		return err
	}

	types := models.ProfileTypes
	label := "all"
	if len(args) == 1 && args[0] != "all" {
		pt, err := models.ParseProfileType(args[0])
		if err != nil {
			return err
		}
		types = []models.ProfileType{pt}
		label = string(pt)
	}

	var items []ListItem
	for _, pt := range types {
		bySource, err := st.ListProfiles(pt)
		if err != nil {
			return err
		}
		sources := make([]string, 0, len(bySource))
		for source := range bySource {
			sources = append(sources, source)
		}
		sort.Strings(sources)
		for _, source := range sources {
			for _, path := range bySource[source] {
				items = append(items, ListItem{
					Name:   strings.TrimSuffix(filepath.Base(path), ".json"),
					Type:   string(pt),
					Source: source,
					Path:   path,
				})
			}
		}
	}

	if listFilter != "" {
		items, err = filterItems(items)
		if err != nil {
			return err
		}
	}
	if !listShowPaths {
		for i := range items {
			items[i].Path = ""
		}
	}

	outputFormat, _ := cmd.Flags().GetString("output")
	if outputFormat != "" {
		if err := cli.ValidateOutputFormat(outputFormat); err != nil {
			return err
		}
	}
	if outputFormat == "json" || outputFormat == "yaml" {
		result := ListResult{Type: label, Items: items, Count: len(items)}
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, result)
	}

	if len(items) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No profiles found.")
		return nil
	}

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	if listShowPaths {
		table.Header("NAME", "TYPE", "SOURCE", "PATH")
		for _, item := range items {
			table.Row(item.Name, item.Type, item.Source, item.Path)
		}
	} else {
		table.Header("NAME", "TYPE", "SOURCE")
		for _, item := range items {
			table.Row(item.Name, item.Type, item.Source)
		}
	}
	table.Flush()
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d profile(s)\n", len(items))
	return nil
}

// filterItems loads each profile body and keeps the items matching the
// --filter query. Files that fail to parse are skipped rather than
// aborting the listing.
func filterItems(items []ListItem) ([]ListItem, error) {
	searchItems := make([]search.Item, 0, len(items))
	byPath := make(map[string]ListItem, len(items))
	for _, item := range items {
		profile, err := store.LoadProfileFile(item.Path)
		if err != nil {
			slog.Debug("skipping unparseable profile", "path", item.Path, "error", err)
			continue
		}
		profile.Type = models.ProfileType(item.Type)
		searchItems = append(searchItems, search.Item{
			Name:    item.Name,
			Path:    item.Path,
			Source:  item.Source,
			Profile: profile,
		})
		byPath[item.Path] = item
	}

	matched, err := search.NewEngine().Search(listFilter, searchItems)
	if err != nil {
		return nil, err
	}

	results := make([]ListItem, 0, len(matched))
	for _, m := range matched {
		results = append(results, byPath[m.Path])
	}
	return results, nil
}
