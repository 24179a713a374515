package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every entry in the catalog",
	Args:  cobra.NoArgs,
	RunE:  runListCmd,
}

var viewCmd = &cobra.Command{
	Use:   "view [home|catalog|mine|favorites]",
	Short: "Show the current view, or switch to another one",
	Long: `Show the entries of the current view.

With an argument, switches the session to that view first.
--type narrows the listing to one media type.

Examples:
  reelshelf view                        # Show the current view
  reelshelf view favorites              # Switch to favorites and show it
  reelshelf view catalog --type anime   # Catalog, anime only`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"home", "catalog", "mine", "favorites"},
	RunE:      runViewCmd,
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Set the search query and show matching titles",
	Long: `Set the session search query and list titles containing it.
Matching ignores case. An empty query matches everything.

Examples:
  reelshelf search титан
  reelshelf search воды --type series
  reelshelf search ""`,
	Args: cobra.ExactArgs(1),
	RunE: runSearchCmd,
}

var toggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Flip the watched flag of an entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runToggleCmd,
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an entry to the catalog",
	Long: `Add an entry to the catalog. New entries start unwatched.

Examples:
  reelshelf add --title "Интерстеллар" --type movie --year 2014 --rating 8.6
  reelshelf add --title "Тьма" --type series --episodes 26 --owned=false`,
	Args: cobra.NoArgs,
	RunE: runAddCmd,
}

func init() {
	rootCmd.AddCommand(listCmd, viewCmd, searchCmd, toggleCmd, addCmd)

	viewCmd.Flags().String("type", "", "Only show one media type: movie, series, anime")
	searchCmd.Flags().String("type", "", "Only show one media type: movie, series, anime")

	addEntryFlags(addCmd)
	_ = addCmd.MarkFlagRequired("title")
}

func addEntryFlags(cmd *cobra.Command) {
	cmd.Flags().String("title", "", "Title (required)")
	cmd.Flags().String("type", "movie", "Media type: movie, series, anime")
	cmd.Flags().String("cover", "", "Cover image URL")
	cmd.Flags().Int("year", 0, "Release year")
	cmd.Flags().Float64("rating", 0, "Rating, 0-10")
	cmd.Flags().Int("episodes", 0, "Episode count (series and anime)")
	cmd.Flags().String("description", "", "Short description")
	cmd.Flags().Bool("owned", true, "Mark as your own upload")
}

func runListCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	resp, err := client.Entries()
	if err != nil {
		return fmt.Errorf("list failed: %w", err)
	}

	if jsonOutput {
		printJSON(resp)
		return nil
	}

	if len(resp.Items) == 0 {
		fmt.Println("Catalog is empty")
		return nil
	}
	fmt.Printf("Catalog (%d):\n\n", resp.Total)
	printEntries(resp.Items)
	return nil
}

func runViewCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)

	if len(args) > 0 {
		if _, err := client.SetView(args[0]); err != nil {
			return fmt.Errorf("switch view failed: %w", err)
		}
	}

	mediaType, _ := cmd.Flags().GetString("type")
	resp, err := client.View(mediaType)
	if err != nil {
		return fmt.Errorf("view failed: %w", err)
	}

	if jsonOutput {
		printJSON(resp)
		return nil
	}

	printView(resp)
	return nil
}

func runSearchCmd(cmd *cobra.Command, args []string) error {
	mediaType, _ := cmd.Flags().GetString("type")
	client := NewClient(serverURL)
	resp, err := client.Search(args[0], mediaType)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if jsonOutput {
		printJSON(resp)
		return nil
	}

	if len(resp.Items) == 0 {
		fmt.Printf("No titles match %q\n", resp.Query)
		return nil
	}
	fmt.Printf("Found %d title(s) for %q:\n\n", resp.Total, resp.Query)
	printEntries(resp.Items)
	return nil
}

func runToggleCmd(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid entry ID: %s", args[0])
	}

	client := NewClient(serverURL)
	if err := client.ToggleWatched(id); err != nil {
		return fmt.Errorf("toggle failed: %w", err)
	}

	entry, err := client.Entry(id)
	if err != nil {
		// Unknown IDs toggle nothing; say so rather than failing.
		if strings.Contains(err.Error(), "404") {
			fmt.Printf("No entry #%d, nothing changed\n", id)
			return nil
		}
		return err
	}

	if jsonOutput {
		printJSON(entry)
		return nil
	}

	state := "unwatched"
	if entry.Watched {
		state = "watched"
	}
	fmt.Printf("#%d %s: %s\n", entry.ID, entry.Title, state)
	return nil
}

func runAddCmd(cmd *cobra.Command, args []string) error {
	req, err := addRequestFromFlags(cmd)
	if err != nil {
		return err
	}

	client := NewClient(serverURL)
	resp, err := client.AddEntry(req)
	if err != nil {
		return fmt.Errorf("add failed: %w", err)
	}

	if jsonOutput {
		printJSON(resp)
		return nil
	}

	fmt.Printf("Added #%d %s\n", resp.Entry.ID, resp.Entry.Title)
	if len(resp.Similar) > 0 {
		fmt.Printf("  Similar titles already in catalog: %s\n", strings.Join(resp.Similar, ", "))
	}
	return nil
}

func addRequestFromFlags(cmd *cobra.Command) (*AddEntryRequest, error) {
	f := cmd.Flags()
	title, _ := f.GetString("title")
	mediaType, _ := f.GetString("type")
	cover, _ := f.GetString("cover")
	year, _ := f.GetInt("year")
	rating, _ := f.GetFloat64("rating")
	episodes, _ := f.GetInt("episodes")
	description, _ := f.GetString("description")
	owned, _ := f.GetBool("owned")

	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("--title is required")
	}

	req := &AddEntryRequest{
		Title:       title,
		CoverURL:    cover,
		Type:        mediaType,
		Year:        year,
		Rating:      rating,
		Description: description,
		Owned:       owned,
	}
	if f.Changed("episodes") {
		req.EpisodeCount = &episodes
	}
	return req, nil
}

func printView(v *ViewResponse) {
	header := v.View
	if v.View == "catalog" && v.Query != "" {
		header = fmt.Sprintf("%s (query %q)", v.View, v.Query)
	}
	if v.Type != "" {
		header = fmt.Sprintf("%s [%s]", header, v.Type)
	}
	fmt.Printf("View: %s\n\n", header)

	if v.Empty {
		if v.View == "favorites" {
			fmt.Println("Favorites are empty. Toggle an entry as watched to see it here.")
		} else {
			fmt.Println("Nothing to show")
		}
		return
	}
	printEntries(v.Items)
}

func printEntries(items []EntryResponse) {
	fmt.Printf("  %-4s %-28s %-7s %-5s %-6s %-6s %s\n", "ID", "TITLE", "TYPE", "YEAR", "RATING", "EPS", "WATCHED")
	fmt.Println("  " + strings.Repeat("-", 72))
	for _, e := range items {
		eps := "-"
		if e.EpisodeCount != nil {
			eps = strconv.Itoa(*e.EpisodeCount)
		}
		watched := ""
		if e.Watched {
			watched = "✓"
		}
		fmt.Printf("  %-4d %-28s %-7s %-5d %-6.1f %-6s %s\n",
			e.ID, truncate(e.Title, 28), e.Type, e.Year, e.Rating, eps, watched)
	}
}

// truncate shortens s to max runes, marking the cut with an ellipsis.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 1 {
		return string(r[:max])
	}
	return string(r[:max-1]) + "…"
}
