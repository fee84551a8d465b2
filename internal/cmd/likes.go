package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eventcal-io/eventcal/internal/events"
	"github.com/eventcal-io/eventcal/internal/tui"
)

var likesCmd = &cobra.Command{
	Use:   "likes",
	Short: "Manage your liked events",
}

var likesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List liked events",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := getCatalog()
		if err != nil {
			return err
		}
		liked, err := getLikes()
		if err != nil {
			return err
		}

		if liked.Len() == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No liked events yet. Use 'eventcal likes toggle <event-id>' or the browser.")
			return nil
		}

		var list []events.Event
		for _, id := range liked.IDs() {
			ev, err := catalog.Get(id)
			if err != nil {
				// Liked id no longer in the catalog; show what we know.
				list = append(list, events.Event{ID: id, Title: "(no longer listed)"})
				continue
			}
			list = append(list, ev)
		}
		printEventList(cmd, list, liked.Liked)
		return nil
	},
}

var likesToggleCmd = &cobra.Command{
	Use:   "toggle <event-id>",
	Short: "Like or unlike an event",
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

		nowLiked, err := liked.Toggle(ev.ID)
		if err != nil {
			return err
		}

		styles := tui.DefaultStyles()
		if nowLiked {
			fmt.Fprintf(cmd.OutOrStdout(), "%s Liked %q\n", styles.Liked.Render("♥"), ev.Title)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Unliked %q\n", ev.Title)
		}
		return nil
	},
}

var likesClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all liked events",
	RunE: func(cmd *cobra.Command, args []string) error {
		liked, err := getLikes()
		if err != nil {
			return err
		}
		if liked.Len() == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No liked events to clear.")
			return nil
		}

		ok, err := tui.PromptForConfirmation(
			fmt.Sprintf("Remove all %d liked events?", liked.Len()), false)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}

		if err := liked.Clear(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Liked events cleared.")
		return nil
	},
}

func init() {
	likesCmd.AddCommand(likesListCmd)
	likesCmd.AddCommand(likesToggleCmd)
	likesCmd.AddCommand(likesClearCmd)

	rootCmd.AddCommand(likesCmd)
}
