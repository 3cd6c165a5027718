// Command flashdeck-stats is the terminal rendition of the visitor-stats
// widget: it records its own visit once, then polls the analytics endpoint
// on a fixed interval and redraws counts and charts.
package main

import (
	"context"
	"flag"
	"fmt"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/flashdeck/analytics"
	"github.com/flashdeck/client"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	valueStyle = lipgloss.NewStyle().Bold(true)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func main() {
	url := flag.String("url", "http://localhost:3000/api/analytics", "analytics endpoint URL")
	interval := flag.Duration("interval", 30*time.Second, "poll interval")
	sessionDir := flag.String("session-dir", "", "directory holding the session identifier (default: user config dir)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sessions := client.NewFileSessionProvider(*sessionDir)
	c := client.New(*url, sessions, client.WithUserAgent("flashdeck-stats"))

	// Count this session as a visitor, the way the browser widget does on mount.
	c.TrackVisit(ctx, "/stats")

	poller := client.NewPoller(c, *interval, render)
	poller.Run(ctx)
}

func render(summary *analytics.StatsSummary, err error) {
	fmt.Println()
	fmt.Println(titleStyle.Render("Visitor stats") + labelStyle.Render("  "+time.Now().Format("15:04:05")))

	if err != nil {
		// Generic unavailable state; the next tick retries with no backoff.
		fmt.Println(errStyle.Render("Unable to load visitor stats"))
		return
	}

	fmt.Printf("%s %s    %s %s\n",
		labelStyle.Render("total (7d):"), valueStyle.Render(fmt.Sprint(summary.TotalVisitors)),
		labelStyle.Render("recent (1h):"), valueStyle.Render(fmt.Sprint(summary.RecentVisitors)))

	if chart := dailyChart(summary.DailyStats); chart != "" {
		fmt.Println()
		fmt.Println(chart)
	}
	fmt.Println()
	fmt.Println(hourlyChart(summary.HourlyStats))
}

func dailyChart(daily []analytics.DailyStat) string {
	if len(daily) < 2 {
		return ""
	}
	data := make([]float64, len(daily))
	for i, d := range daily {
		data[i] = float64(d.Visitors)
	}
	caption := fmt.Sprintf("unique visitors per day (%s .. %s)",
		daily[0].Date, daily[len(daily)-1].Date)
	return asciigraph.Plot(data,
		asciigraph.Height(6),
		asciigraph.Width(60),
		asciigraph.Caption(caption),
	)
}

func hourlyChart(hourly []analytics.HourlyStat) string {
	data := make([]float64, len(hourly))
	for i, h := range hourly {
		data[i] = float64(h.Visitors)
	}
	graph := asciigraph.Plot(data,
		asciigraph.Height(6),
		asciigraph.Width(60),
		asciigraph.Caption("unique visitors per hour (today, UTC)"),
	)
	return graph + "\n" + labelStyle.Render(strings.Repeat(" ", 7)+"00:00 .. 23:00")
}
