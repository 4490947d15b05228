package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/whlan02/TimerForWork/internal/parser"
	"github.com/whlan02/TimerForWork/internal/tui"
)

var statsCmd = &cobra.Command{
	Use:   "stats [date]",
	Short: "Show week and month heatmaps of logged time",
	Long: `Show calendar heatmaps of logged time. Opens on the week containing
the given date (default today).

Examples:
  timerforwork stats             # This week
  timerforwork stats --month     # This month
  timerforwork stats 2026-08-01  # The week of August 1st`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		anchor := ""
		if len(args) > 0 {
			anchor = args[0]
		}
		day, err := parser.ParseDay(anchor)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		st, cfg, err := openStore()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer st.Close()

		month, _ := cmd.Flags().GetBool("month")
		if err := tui.RunStatsTUI(st, cfg, day, month); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	},
}

func init() {
	statsCmd.Flags().BoolP("month", "m", false, "Open in month view")
}
