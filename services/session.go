package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"bikeshare-explorer/models"
	"bikeshare-explorer/utils"
)

// Session drives the interactive loop: ask, analyse, report, browse, restart
type Session struct {
	pipeline *Pipeline
	prompter *Prompter
	out      io.Writer
	logger   *utils.Logger
}

// NewSession creates a new Session
func NewSession(pipeline *Pipeline, prompter *Prompter, out io.Writer, logger *utils.Logger) *Session {
	return &Session{pipeline: pipeline, prompter: prompter, out: out, logger: logger}
}

// Run loops until the user declines a restart, input ends, or ctx is cancelled.
// A failed run is reported and the user is offered a restart.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		spec, err := s.prompter.AskFilters()
		if err != nil {
			return ignoreEOF(err)
		}

		analysis, err := s.pipeline.Run(ctx, spec)
		if err != nil {
			s.logger.Error("Analysis failed", "city", spec.City, "error", err)
			fmt.Fprintf(s.out, "Could not analyse %s: %v\n", models.Title(spec.City), err)
		} else {
			PrintReport(s.out, analysis)
			if err := s.browse(analysis.Table); err != nil {
				return ignoreEOF(err)
			}
		}

		again, err := s.prompter.AskYesNo("\nWould you like to restart? Enter yes or no.", false)
		if err != nil {
			return ignoreEOF(err)
		}
		if !again {
			return nil
		}
	}
}

// browse pages through raw rows, PageSize at a time, while the user wants more
func (s *Session) browse(t *models.Table) error {
	view, err := s.prompter.AskYesNo("\nWould you like to view 5 rows of individual trip data? Enter yes or no", false)
	if err != nil {
		return err
	}
	if !view {
		fmt.Fprintln(s.out, "No raw data displayed.")
		fmt.Fprintln(s.out, strings.Repeat("-", 40))
		return nil
	}

	offset := 0
	for {
		PrintWindow(s.out, Window(t, offset), offset)
		next, more := NextOffset(t, offset)
		if !more {
			fmt.Fprintln(s.out, "End of raw data.")
			break
		}
		cont, err := s.prompter.AskYesNo("\nDo you wish to continue?", true)
		if err != nil {
			return err
		}
		if !cont {
			break
		}
		offset = next
	}
	fmt.Fprintln(s.out, strings.Repeat("-", 40))
	return nil
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
