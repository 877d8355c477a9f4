package ui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"golang.org/x/term"
	"tally/internal/domain"
)

// ErrNotTerminal is returned when the viewer has no terminal to draw on
var ErrNotTerminal = errors.New("failure viewer needs a terminal")

// ErrorViewer displays failure reports in an interactive TUI
type ErrorViewer struct {
	isTerminal func() bool
}

// NewErrorViewer creates a new ErrorViewer drawing on stdout
func NewErrorViewer() *ErrorViewer {
	return &ErrorViewer{
		isTerminal: func() bool { return term.IsTerminal(int(os.Stdout.Fd())) },
	}
}

// View shows failures in a list on the left with the selected failure's
// location and source line on the right.  Nothing is shown for an empty
// list.
func (ev *ErrorViewer) View(failures []domain.FailureReport) error {
	if len(failures) == 0 {
		return nil
	}
	if !ev.isTerminal() {
		return ErrNotTerminal
	}

	// Failures marked as looked at, by index
	checked := make(map[int]bool)

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	listItemText := func(index int) string {
		title := failureTitle(failures[index], index+1)
		if checked[index] {
			return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", index+1, title)
		}
		return fmt.Sprintf("[yellow]%d.[white] %s", index+1, title)
	}

	for i := range failures {
		list.AddItem(listItemText(i), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsView, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	updateHeader := func() {
		headerView.SetText(fmt.Sprintf(
			" Failed assertions (%d total, %d checked) | ↑↓ navigate, [yellow]C[white] mark checked, → details, ← back, Ctrl+C exit ",
			len(failures), len(checked)))
	}

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index < 0 || index >= len(failures) {
			return
		}
		statsView.SetText(formatFailureStats(failures[index]))
		detailsView.SetText(formatFailureDetails(failures[index]))
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'c' || event.Rune() == 'C' {
				index := list.GetCurrentItem()
				if checked[index] {
					delete(checked, index)
				} else {
					checked[index] = true
				}
				list.SetItemText(index, listItemText(index), "")
				updateHeader()
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(int, string, string, rune) { updateDetails() })

	updateHeader()
	updateDetails()

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(layout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// formatFailureDetails formats a failure using tview color tags
func formatFailureDetails(failure domain.FailureReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[red]✗ %s: %s FAILED[white]\n\n", failure.TestName, failure.Kind)
	fmt.Fprintf(&b, "[yellow]Location:[white] %s\n\n", failure.Location())

	text := failure.SourceText
	if text == "" {
		text = "[gray](source unavailable)[white]"
	} else {
		text = tview.Escape(text)
	}
	fmt.Fprintf(&b, "[yellow]Source:[white]\n%6d | %s\n\n", failure.Line, text)

	if failure.Message != "" {
		fmt.Fprintf(&b, "[yellow]Message:[white]\n%s\n", tview.Escape(failure.Message))
	}
	return b.String()
}

// formatFailureStats formats the header line of a failure
func formatFailureStats(failure domain.FailureReport) string {
	path := failure.FilePath
	if path == "" {
		path = "Unknown path"
	}
	return fmt.Sprintf("[cyan]path:[white] [yellow]%s[white]:[yellow]%d[white]\n", path, failure.Line)
}
