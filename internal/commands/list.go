package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/whlan02/TimerForWork/internal/aggregate"
	"github.com/whlan02/TimerForWork/internal/models"
	"github.com/whlan02/TimerForWork/internal/parser"
)

// recordSource is the read side of the store, split out so the printing
// helpers can be exercised against a fake in tests.
type recordSource interface {
	QueryRange(from, to time.Time) ([]models.TimeRecord, int, error)
}

var listCmd = &cobra.Command{
	Use:     "ls [date]",
	Aliases: []string{"list"},
	Short:   "List logged intervals for a day",
	Long: `List the intervals logged on a day (default today).

Examples:
  timerforwork ls               # Today's intervals
  timerforwork ls yesterday
  timerforwork ls 2026-08-27
  timerforwork ls --week        # Day totals for the whole week`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		arg := ""
		if len(args) > 0 {
			arg = args[0]
		}
		day, err := parser.ParseDay(arg)
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

		week, _ := cmd.Flags().GetBool("week")
		if week {
			printWeek(day, cfg.WorkweekOnly, st)
			return
		}
		printDay(day, st)
	},
}

func printDay(day time.Time, st recordSource) {
	recs, storeSkipped, err := st.QueryRange(day, day)
	if err != nil {
		fmt.Printf("Error reading records: %v\n", err)
		return
	}
	dayRecs := aggregate.ForDay(recs, day)

	fmt.Printf("%s\n", parser.FormatDay(day))
	if len(dayRecs) == 0 {
		fmt.Println("No intervals logged. Use 'timerforwork start' to begin tracking.")
		reportSkipped(storeSkipped)
		return
	}

	fmt.Printf("%-10s %-10s %-20s %s\n", "START", "END", "DURATION", "NOTE")
	fmt.Println(strings.Repeat("-", 60))

	totalSec := 0
	for _, rec := range dayRecs {
		totalSec += rec.DurationSec
		fmt.Printf("%-10s %-10s %-20s %s\n",
			rec.Start.Format("15:04:05"),
			rec.End.Format("15:04:05"),
			fmt.Sprintf("%d min (%s)", rec.DurationMin(), formatHMS(rec.DurationSec)),
			rec.Note)
	}

	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("Total: %d min (%s)\n", (totalSec+30)/60, formatHMS(totalSec))
	reportSkipped(storeSkipped)
}

func printWeek(day time.Time, workweekOnly bool, st recordSource) {
	monday := aggregate.WeekOf(day)
	sunday := monday.AddDate(0, 0, 6)

	recs, storeSkipped, err := st.QueryRange(monday, sunday)
	if err != nil {
		fmt.Printf("Error reading records: %v\n", err)
		return
	}
	buckets, aggSkipped := aggregate.Aggregate(recs, monday, sunday)

	days := 7
	if workweekOnly {
		days = 5
	}
	_, isoWeek := monday.ISOWeek()
	fmt.Printf("Week W%d: %s ~ %s\n", isoWeek,
		monday.Format("2006-01-02"),
		monday.AddDate(0, 0, days-1).Format("2006-01-02"))
	fmt.Println(strings.Repeat("-", 60))

	totalMin := 0
	totalSec := 0
	for i := 0; i < days && i < len(buckets); i++ {
		b := buckets[i]
		totalMin += b.TotalMinutes
		totalSec += b.TotalSeconds
		fmt.Printf("%-16s %d min (%s)\n",
			b.Date.Format("Mon 2006-01-02"),
			b.TotalMinutes,
			formatHMS(b.TotalSeconds))
	}

	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("Total: %d min (%s)\n", totalMin, formatHMS(totalSec))
	reportSkipped(storeSkipped + aggSkipped)
}

func reportSkipped(n int) {
	if n > 0 {
		fmt.Printf("(skipped %d malformed row(s))\n", n)
	}
}

// formatHMS formats seconds as HH:MM:SS
func formatHMS(seconds int) string {
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
}

func init() {
	listCmd.Flags().BoolP("week", "w", false, "Show day totals for the whole week")
}
