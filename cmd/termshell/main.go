// Command termshell runs the portfolio terminal UI.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gbrlmtts/terminal-card-shell/logging"
	"github.com/gbrlmtts/terminal-card-shell/tui"
)

func main() {
	logPath := flag.String("log-path", getEnvOrDefault("LOG_PATH", ""), "Write JSON logs to this file (stderr belongs to the UI); empty disables logging")
	highScore := flag.Int("high-score", getEnvIntOrDefault("HIGH_SCORE", 0), "Starting in-memory snake high score")
	flag.Parse()

	var logW io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logW = f
	}
	logger := logging.New(logW, slog.LevelInfo)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	logger.Info("starting terminal shell", "high_score", *highScore)

	p := tea.NewProgram(tui.NewModel(*highScore, rng), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		logger.Error("program failed", "err", err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if m, ok := final.(tui.Model); ok && m.HighScore() > 0 {
		fmt.Printf("snake high score this session: %d\n", m.HighScore())
		logger.Info("session ended", "high_score", m.HighScore())
	}
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvIntOrDefault(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
