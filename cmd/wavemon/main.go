// Command wavemon renders live CPU and memory utilization as a
// dual-polarity waveform: CPU grows upward from the center axis, memory
// downward. Keys toggle rendering mode and effects at runtime; an optional
// theme file is reloaded on change.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/waveform/terminal"
)

var (
	tickMs    int
	themePath string
	modeFlag  string
	withSound bool
	noBorder  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "wavemon",
		Short: "Terminal waveform monitor for CPU and memory",
		Long: `wavemon samples CPU and memory utilization and renders both as a
dual-polarity waveform chart using braille sub-cell resolution.

Runtime keys:
  q, Esc     quit
  1, 2       swap top/bottom data source
  +, -       faster/slower sampling
  c          cycle colors
  m          toggle braille/block mode
  f          toggle horizontal fade
  g          toggle vertical gradient
  s          toggle autoscale
  b          toggle border`,
		RunE: run,
	}

	rootCmd.Flags().IntVar(&tickMs, "tick", 100, "Sampling interval in milliseconds")
	rootCmd.Flags().StringVar(&themePath, "theme", "", "Theme file (JSON), reloaded on change")
	rootCmd.Flags().StringVar(&modeFlag, "mode", "braille", "Initial render mode: braille, block")
	rootCmd.Flags().BoolVar(&withSound, "sound", false, "Beep when a series crosses the alert level")
	rootCmd.Flags().BoolVar(&noBorder, "no-border", false, "Start without the border frame")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if tickMs < 10 {
		return fmt.Errorf("tick interval too small: %dms (minimum 10)", tickMs)
	}

	var mode string
	switch modeFlag {
	case "braille", "block":
		mode = modeFlag
	default:
		return fmt.Errorf("invalid mode: %s (must be braille or block)", modeFlag)
	}

	session, err := terminal.NewSession()
	if err != nil {
		return fmt.Errorf("terminal init failed: %w", err)
	}
	defer session.Fini()

	app, err := newApp(session, appConfig{
		tickRate:  time.Duration(tickMs) * time.Millisecond,
		themePath: themePath,
		modeName:  mode,
		sound:     withSound,
		border:    !noBorder,
	})
	if err != nil {
		return err
	}
	defer app.close()

	return app.run()
}
