package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eventcal-io/eventcal/internal/events"
	"github.com/eventcal-io/eventcal/internal/tui"
)

var eventsCategory string

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Browse and search the event catalog",
}

var eventsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List upcoming events",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := getCatalog()
		if err != nil {
			return err
		}
		liked, err := getLikes()
		if err != nil {
			return err
		}

		list := catalog.Events()
		if eventsCategory != "" {
			list = catalog.FilterCategory(eventsCategory)
		}
		printEventList(cmd, list, liked.Liked)
		return nil
	},
}

var eventsSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search events by title or description",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := getCatalog()
		if err != nil {
			return err
		}
		liked, err := getLikes()
		if err != nil {
			return err
		}

		matches := catalog.Search(args[0])
		if len(matches) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No events match %q.\n", args[0])
			return nil
		}
		printEventList(cmd, matches, liked.Liked)
		return nil
	},
}

var eventsShowCmd = &cobra.Command{
	Use:   "show <event-id>",
	Short: "Show one event in detail",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := getCatalog()
		if err != nil {
			return err
		}
		liked, err := getLikes()
		if err != nil {
			return err
		}

		ev, err := catalog.Get(args[0])
		if err != nil {
			return err
		}

		styles := tui.DefaultStyles()
		out := cmd.OutOrStdout()
		title := ev.Title
		if liked.Liked(ev.ID) {
			title += " " + styles.Liked.Render("♥")
		}
		fmt.Fprintln(out, styles.Title.Render(title))
		fmt.Fprintf(out, "ID:       %s\n", ev.ID)
		fmt.Fprintf(out, "Date:     %s\n", ev.Date)
		fmt.Fprintf(out, "Category: %s\n", ev.Category)
		fmt.Fprintf(out, "Location: %s\n", ev.Location)
		if ev.URL != "" {
			fmt.Fprintf(out, "URL:      %s\n", ev.URL)
		}
		fmt.Fprintf(out, "\n%s\n", ev.Description)
		return nil
	},
}

var eventsCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List event categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := getCatalog()
		if err != nil {
			return err
		}
		for _, c := range catalog.Categories() {
			fmt.Fprintln(cmd.OutOrStdout(), c)
		}
		return nil
	},
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse events interactively",
	Long: `Open an interactive browser over the event catalog. Use the arrow
keys to move, space to like or unlike the selected event, / to search,
and q to quit. Likes are saved as you toggle them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := getCatalog()
		if err != nil {
			return err
		}
		liked, err := getLikes()
		if err != nil {
			return err
		}
		return tui.Run(tui.NewBrowseModel(catalog, liked))
	},
}

func printEventList(cmd *cobra.Command, list []events.Event, isLiked func(string) bool) {
	styles := tui.DefaultStyles()
	out := cmd.OutOrStdout()
	if len(list) == 0 {
		fmt.Fprintln(out, "No events.")
		return
	}
	for _, ev := range list {
		mark := " "
		if isLiked(ev.ID) {
			mark = styles.Liked.Render("♥")
		}
		fmt.Fprintf(out, "%s %-12s %-22s %s\n",
			mark, ev.Date, ev.ID, ev.Title)
		var detail []string
		if ev.Category != "" {
			detail = append(detail, ev.Category)
		}
		if ev.Location != "" {
			detail = append(detail, ev.Location)
		}
		if len(detail) > 0 {
			fmt.Fprintf(out, "  %s\n", styles.Muted.Render(strings.Join(detail, " · ")))
		}
	}
}

func init() {
	eventsListCmd.Flags().StringVarP(&eventsCategory, "category", "c", "", "only list events in this category")

	eventsCmd.AddCommand(eventsListCmd)
	eventsCmd.AddCommand(eventsSearchCmd)
	eventsCmd.AddCommand(eventsShowCmd)
	eventsCmd.AddCommand(eventsCategoriesCmd)

	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(browseCmd)
}
