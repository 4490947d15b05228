package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/whlan02/TimerForWork/internal/tui"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Open the interactive timer",
	Long: `Open the interactive timer. Start, pause and resume tracking, then
save the interval with a note or cancel it.

Keys:
  s         start / resume
  p         pause
  enter     save (prompts for a note)
  c         cancel the session
  q         quit`,
	Run: func(cmd *cobra.Command, args []string) {
		st, cfg, err := openStore()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer st.Close()

		if err := tui.RunTimerTUI(st, cfg); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	},
}
