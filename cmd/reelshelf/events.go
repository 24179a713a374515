package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vmunix/reelshelf/internal/events"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Show recent events",
	Args:  cobra.NoArgs,
	RunE:  runEventsCmd,
}

func init() {
	rootCmd.AddCommand(eventsCmd)
	eventsCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
}

func runEventsCmd(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	client := NewClient(serverURL)
	resp, err := client.Events(limit)
	if err != nil {
		return fmt.Errorf("failed to fetch events: %w", err)
	}

	if jsonOutput {
		printJSON(resp)
		return nil
	}

	if len(resp.Items) == 0 {
		fmt.Println("No events")
		return nil
	}

	registry := events.DefaultRegistry()

	fmt.Printf("Recent Events (%d):\n\n", resp.Total)
	fmt.Printf("  %-16s %-24s %-10s %s\n", "TIME", "TYPE", "ENTITY", "DETAILS")
	fmt.Println("  " + strings.Repeat("-", 72))

	for _, e := range resp.Items {
		entity := fmt.Sprintf("%s/%d", e.EntityType, e.EntityID)
		fmt.Printf("  %-16s %-24s %-10s %s\n", timeAgo(e.OccurredAt), e.EventType, entity, describeEvent(registry, e))
	}

	return nil
}

func timeAgo(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return "?"
	}
	return humanize.Time(t)
}

// describeEvent renders the payload of a known event type in one line.
func describeEvent(registry *events.Registry, e EventResponse) string {
	evt, err := registry.Unmarshal(events.RawEvent{EventType: e.EventType, Payload: e.Payload})
	if err != nil {
		return ""
	}

	switch v := evt.(type) {
	case *events.EntryAdded:
		s := fmt.Sprintf("%q (%s)", v.Title, v.MediaType)
		if len(v.Similar) > 0 {
			s += ", similar to " + strings.Join(v.Similar, ", ")
		}
		return s
	case *events.WatchedToggled:
		if v.Watched {
			return "watched"
		}
		return "unwatched"
	case *events.QueryChanged:
		return fmt.Sprintf("%q -> %q", v.OldQuery, v.NewQuery)
	case *events.ViewChanged:
		return v.OldView + " -> " + v.NewView
	case *events.TypeFilterChanged:
		return typeOrAll(v.OldType) + " -> " + typeOrAll(v.NewType)
	}
	return ""
}

func typeOrAll(t string) string {
	if t == "" {
		return "all"
	}
	return t
}
