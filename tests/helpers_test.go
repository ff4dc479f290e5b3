package tests_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/containerd/nerdctl/mod/tigron/test"
	"github.com/containerd/nerdctl/mod/tigron/tig"
)

// expectContains returns a comparator verifying the output contains a substring.
func expectContains(substr string) test.Comparator {
	return func(stdout string, testing tig.T) {
		testing.Helper()

		if !strings.Contains(stdout, substr) {
			testing.Log(fmt.Sprintf("expected substring %q not found in output:\n%s", substr, stdout))
			testing.Fail()
		}
	}
}

// expectReportContains returns a comparator verifying the report file at path contains a substring.
func expectReportContains(path, substr string) test.Comparator {
	return func(_ string, testing tig.T) {
		testing.Helper()

		content, err := os.ReadFile(path) //nolint:gosec // test fixture path
		if err != nil {
			testing.Log(fmt.Sprintf("reading report %s: %v", path, err))
			testing.Fail()

			return
		}

		if !strings.Contains(string(content), substr) {
			testing.Log(fmt.Sprintf("expected substring %q not found in report:\n%s", substr, content))
			testing.Fail()
		}
	}
}

// expectRowOrder returns a comparator verifying that the report lists the given labels in order.
// A label is matched as the text closing a table cell or anchor (">label</").
func expectRowOrder(path string, labels ...string) test.Comparator {
	return func(_ string, testing tig.T) {
		testing.Helper()

		content, err := os.ReadFile(path) //nolint:gosec // test fixture path
		if err != nil {
			testing.Log(fmt.Sprintf("reading report %s: %v", path, err))
			testing.Fail()

			return
		}

		report := string(content)
		last := -1

		for _, label := range labels {
			idx := strings.Index(report, ">"+label+"</")
			if idx <= last {
				testing.Log(fmt.Sprintf("expected %q after previous rows (index %d, previous %d) in report:\n%s",
					label, idx, last, report))
				testing.Fail()

				return
			}

			last = idx
		}
	}
}

// expectNoFile returns a comparator verifying that nothing was written at path.
func expectNoFile(path string) test.Comparator {
	return func(_ string, testing tig.T) {
		testing.Helper()

		if _, err := os.Stat(path); err == nil {
			testing.Log(fmt.Sprintf("expected no file at %s", path))
			testing.Fail()
		}
	}
}
