// Package printer hands finished PDFs to the OS print spooler.
//
// It shells out to the CUPS lp command (falling back to lpr), which
// covers Linux and macOS. There is no in-process driver integration;
// printer capabilities stay the spooler's problem.
package printer

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"

	"github.com/sirupsen/logrus"
)

// Options describe one print job.
type Options struct {
	// Printer is the destination queue name. Empty uses the system
	// default printer.
	Printer string

	// Duplex requests two-sided printing on the long edge.
	Duplex bool

	// Color requests color output; otherwise the job is sent monochrome.
	Color bool

	// Copies is the number of copies. Values below 1 mean 1.
	Copies int

	// Pages is a page selection like "1-4,7". Empty prints everything.
	Pages string
}

// lpArgs builds the lp argument list for a job.
func lpArgs(path string, o Options) []string {
	var args []string
	if o.Printer != "" {
		args = append(args, "-d", o.Printer)
	}
	if o.Copies > 1 {
		args = append(args, "-n", strconv.Itoa(o.Copies))
	}
	if o.Pages != "" {
		args = append(args, "-P", o.Pages)
	}
	if o.Duplex {
		args = append(args, "-o", "sides=two-sided-long-edge")
	} else {
		args = append(args, "-o", "sides=one-sided")
	}
	if o.Color {
		args = append(args, "-o", "print-color-mode=color")
	} else {
		args = append(args, "-o", "print-color-mode=monochrome")
	}
	return append(args, path)
}

// lprArgs builds the lpr fallback argument list. lpr has no page
// selection; callers needing one must pre-trim the document.
func lprArgs(path string, o Options) []string {
	var args []string
	if o.Printer != "" {
		args = append(args, "-P", o.Printer)
	}
	if o.Copies > 1 {
		args = append(args, "-#", strconv.Itoa(o.Copies))
	}
	if o.Duplex {
		args = append(args, "-o", "sides=two-sided-long-edge")
	}
	return append(args, path)
}

// Print spools the PDF at path. It blocks until the spooler accepts
// the job, not until paper comes out.
func Print(ctx context.Context, path string, o Options) error {
	name, args, err := spoolCommand(path, o)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"command": name,
		"args":    args,
	}).Debug("spooling print job")

	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("printer: %s failed: %w: %s", name, err, out)
	}
	return nil
}

func spoolCommand(path string, o Options) (string, []string, error) {
	if _, err := exec.LookPath("lp"); err == nil {
		return "lp", lpArgs(path, o), nil
	}
	if _, err := exec.LookPath("lpr"); err == nil {
		if o.Pages != "" {
			return "", nil, fmt.Errorf("printer: lpr does not support page selection %q", o.Pages)
		}
		return "lpr", lprArgs(path, o), nil
	}
	return "", nil, fmt.Errorf("printer: neither lp nor lpr found in PATH")
}
