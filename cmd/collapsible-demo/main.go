package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	collapsible "github.com/edwardaux/CollapsibleView"
	"github.com/edwardaux/CollapsibleView/internal/logging"
)

func main() {
	if err := runApp(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// runApp is the demo entry point with panic recovery.
func runApp() (err error) {
	// Temporary stdout logger for bootstrap errors
	bootLogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	defer func() {
		if r := recover(); r != nil {
			bootLogger.Error("panic recovered",
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	cfg := configFromEnv()

	logger, err := logging.New("collapsible-demo", cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger.Info("starting CollapsibleView demo", slog.Bool("debug", cfg.Debug))

	fyneApp := app.NewWithID("com.edwardaux.collapsibleview.demo")
	loadThemePreference(fyneApp)

	window := fyneApp.NewWindow("CollapsibleView Demo")
	window.SetContent(buildDemo(fyneApp, logger))
	window.Resize(fyne.NewSize(420, 560))

	window.ShowAndRun()
	logger.Info("demo shutdown complete")
	return nil
}

// buildDemo assembles a column of collapsible sections, each wired to log
// expansion changes through the shared listener.
func buildDemo(a fyne.App, logger *slog.Logger) fyne.CanvasObject {
	listener := &logListener{logger: logger}

	settings := widget.NewForm(
		widget.NewFormItem("Name", widget.NewEntry()),
		widget.NewFormItem("Theme", themeSelector(a)),
		widget.NewFormItem("Autosave", widget.NewCheck("", nil)),
	)
	settingsSection := collapsible.NewExpanded("Settings", settings)
	settingsSection.SetDisclosureListener(listener)

	about := widget.NewLabel("CollapsibleView is a reusable panel widget.\n" +
		"Click a section's disclosure button to expand or\n" +
		"collapse its content with an animated reveal.")
	about.Wrapping = fyne.TextWrapWord
	aboutSection := collapsible.New("About", about)
	aboutSection.SetDisclosureListener(listener)

	details := widget.NewLabel("The content region is supplied by the\n" +
		"embedding application and keeps its own natural\n" +
		"height. The widget only animates how much of it\n" +
		"is revealed.")
	detailsSection := collapsible.New("Details", details)
	detailsSection.SetDisclosureListener(listener)

	return container.NewVBox(settingsSection, aboutSection, detailsSection)
}

// logListener logs every expansion transition.
type logListener struct {
	logger *slog.Logger
}

// ExpansionChanged implements collapsible.DisclosureListener.
func (l *logListener) ExpansionChanged(c *collapsible.Collapsible, expanded bool) {
	l.logger.Info("section expansion changed",
		slog.String("title", c.Title),
		slog.Bool("expanded", expanded),
	)
}
