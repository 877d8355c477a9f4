package ui

import (
	"fmt"
	"iter"

	"tally/internal/domain"
)

// Formatter formats and displays reports and test lists
type Formatter struct {
	console *Console
}

// NewFormatter creates a new Formatter printing through console
func NewFormatter(console *Console) *Formatter {
	return &Formatter{console: console}
}

// PrintReport prints the total of failed assertions followed by one line
// per failure in the order the failures occurred.
func (f *Formatter) PrintReport(total int, failures iter.Seq[domain.FailureReport]) {
	c := f.console
	c.title.Fprintln(c.out, "======== testing report ========")
	if total == 0 {
		c.pass.Fprintf(c.out, "failed tests: %d\n", total)
	} else {
		c.fail.Fprintf(c.out, "failed tests: %d\n", total)
	}
	for failure := range failures {
		c.warn.Fprintf(c.out, "%s: ", failure.TestName)
		c.plain.Fprintf(c.out, "line %d:%s\n", failure.Line, failure.SourceText)
	}
	c.title.Fprint(c.out, "================================\n\n")
}

// PrintSummary prints a one-line verdict for the run
func (f *Formatter) PrintSummary(summary domain.RunSummary) {
	c := f.console
	if summary.Passed() {
		c.pass.Fprintf(c.out, "✓ All %d test(s) passed!\n", len(summary.Tests))
		return
	}
	c.fail.Fprintf(c.out, "✗ %d of %d test(s) failed with %d assertion failure(s)\n",
		summary.FailedTests(), len(summary.Tests), summary.TotalFailed)
}

// PrintTestList prints the registered tests as a tree of groups in
// registration order.
func (f *Formatter) PrintTestList(tests iter.Seq[domain.Test]) {
	c := f.console

	var groups []string
	cases := map[string][]string{}
	count := 0
	for test := range tests {
		group, name, ok := domain.SplitName(test.Name)
		if !ok {
			group, name = test.Name, ""
		}
		if _, seen := cases[group]; !seen {
			groups = append(groups, group)
		}
		cases[group] = append(cases[group], name)
		count++
	}

	if count == 0 {
		c.warn.Fprintln(c.out, "No tests registered")
		return
	}
	c.pass.Fprintf(c.out, "Found %d test(s) in %d group(s):\n\n", count, len(groups))

	for i, group := range groups {
		isLastGroup := i == len(groups)-1
		if isLastGroup {
			c.title.Fprintf(c.out, "└── %s\n", group)
		} else {
			c.title.Fprintf(c.out, "├── %s\n", group)
		}

		names := cases[group]
		for j, name := range names {
			isLastCase := j == len(names)-1

			var prefix string
			if isLastGroup {
				if isLastCase {
					prefix = "    └── "
				} else {
					prefix = "    ├── "
				}
			} else {
				if isLastCase {
					prefix = "│   └── "
				} else {
					prefix = "│   ├── "
				}
			}
			fmt.Fprintf(c.out, "%s%s\n", prefix, c.warn.Sprint(name))
		}
	}
}

// failureTitle names a failure for list displays
func failureTitle(failure domain.FailureReport, number int) string {
	if failure.TestName == "" {
		return fmt.Sprintf("Failure %d", number)
	}
	return failure.TestName
}
