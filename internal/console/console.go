// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
)

// Action tells the caller what to do once the console loop has ended.
type Action int

const (
	// ActionExit means the user asked to leave, or the input ran out.
	ActionExit Action = iota

	// ActionStartWeb means the user asked to start the web server.
	ActionStartWeb
)

const maxLineSize = 1 << 20

// Console is the interactive menu over a note store.
type Console struct {
	notes service.NoteService
	in    *bufio.Scanner
	out   io.Writer
	style styles

	copyToClipboard func(string) error

	logger *logger.Logger
}

// Option customises a [Console].
type Option func(*Console)

// WithClipboard replaces the system clipboard used by the copy command.
func WithClipboard(write func(string) error) Option {
	return func(c *Console) {
		c.copyToClipboard = write
	}
}

func New(notes service.NoteService, in io.Reader, out io.Writer, logger *logger.Logger, opts ...Option) *Console {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)

	c := &Console{
		notes:           notes,
		in:              scanner,
		out:             out,
		style:           newStyles(out),
		copyToClipboard: clipboard.WriteAll,
		logger:          logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type menuItem struct {
	key    string
	label  string
	action func(c *Console, ctx context.Context) error
}

var menu = []menuItem{
	{"1", "Add new note", (*Console).addNote},
	{"2", "List all notes", (*Console).listNotes},
	{"3", "View note details", (*Console).viewNote},
	{"4", "Search notes", (*Console).searchNotes},
	{"5", "Update note", (*Console).updateNote},
	{"6", "Delete note", (*Console).deleteNote},
	{"7", "Start web server", nil},
	{"8", "Exit", nil},
	{"9", "Copy note content to clipboard", (*Console).copyNote},
}

// Run shows the menu until the user exits, asks for the web server, the
// input ends or ctx is done. Store failures are printed and the loop goes
// on; only input failures are returned.
func (c *Console) Run(ctx context.Context) (Action, error) {
	c.println(c.style.banner.Render("Go Notes"))
	c.println(c.style.muted.Render(strings.Repeat("─", 40)))

	for {
		if err := ctx.Err(); err != nil {
			return ActionExit, nil
		}

		c.printMenu()
		choice, err := c.readLine("\n" + c.style.prompt.Render("Enter your choice:") + " ")
		if err != nil {
			return c.stopOn(err)
		}

		switch choice {
		case "7":
			c.println(c.style.success.Render("Starting web server..."))
			return ActionStartWeb, nil
		case "8":
			c.println(c.style.banner.Render("Goodbye!"))
			return ActionExit, nil
		}

		item, ok := findMenuItem(choice)
		if !ok {
			c.fail(fmt.Sprintf("Invalid choice! Please enter a number between 1 and %d.", len(menu)))
			continue
		}

		c.logger.Debug().Str("choice", choice).Msg("menu command")
		if err = item.action(c, ctx); err != nil {
			return c.stopOn(err)
		}
	}
}

func (c *Console) stopOn(err error) (Action, error) {
	if errors.Is(err, io.EOF) {
		c.logger.Debug().Msg("console input closed")
		return ActionExit, nil
	}
	return ActionExit, fmt.Errorf("reading console input: %w", err)
}

func findMenuItem(key string) (menuItem, bool) {
	for _, item := range menu {
		if item.key == key && item.action != nil {
			return item, true
		}
	}
	return menuItem{}, false
}

func (c *Console) printMenu() {
	c.println("\n" + c.style.label.Render("Available commands:"))
	for _, item := range menu {
		c.printf("  %s - %s\n", c.style.menuKey.Render(item.key), item.label)
	}
}

// readLine prompts and returns the next input line without surrounding
// whitespace. It returns io.EOF once the input is exhausted.
func (c *Console) readLine(prompt string) (string, error) {
	line, err := c.readRawLine(prompt)
	return strings.TrimSpace(line), err
}

// readRawLine keeps leading whitespace, which matters inside note content.
func (c *Console) readRawLine(prompt string) (string, error) {
	if prompt != "" {
		c.printf("%s", prompt)
	}

	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimRight(c.in.Text(), " \t\r"), nil
}

// readContent collects lines up to the END sentinel. keep reports that the
// KEEP sentinel was entered, which is honoured only when allowKeep is set.
func (c *Console) readContent(allowKeep bool) (lines []string, keep bool, err error) {
	for {
		line, err := c.readRawLine("")
		if err != nil {
			return nil, false, err
		}

		switch strings.TrimSpace(line) {
		case endSentinel:
			return lines, false, nil
		case keepSentinel:
			if allowKeep {
				return nil, true, nil
			}
		}
		lines = append(lines, line)
	}
}

// readIndex asks for a 1-based note number and returns it 0-based.
func (c *Console) readIndex(prompt string) (int, bool, error) {
	raw, err := c.readLine(c.style.prompt.Render(prompt) + " ")
	if err != nil {
		return 0, false, err
	}

	n, convErr := strconv.Atoi(raw)
	if convErr != nil {
		c.fail("Please enter a valid number!")
		return 0, false, nil
	}
	if n < 1 {
		c.fail("Invalid note number!")
		return 0, false, nil
	}
	return n - 1, true, nil
}

func (c *Console) header(title string) {
	rule := c.style.rule.Render(strings.Repeat("═", ruleWidth))
	c.println("\n" + rule)
	c.println(c.style.header.Render(title))
	c.println(rule)
}

// reportStoreError prints a store failure in words the user can act on.
func (c *Console) reportStoreError(err error) {
	c.logger.Err(err).Msg("note store operation failed")

	switch {
	case errors.Is(err, service.ErrIndexOutOfRange):
		c.fail("Invalid note number!")
	case errors.Is(err, service.ErrNoteNotFound):
		c.fail("Note not found!")
	default:
		c.fail("Error: " + err.Error())
	}
}

func (c *Console) fail(msg string) {
	c.println(c.style.failure.Render("✗ " + msg))
}

func (c *Console) ok(msg string) {
	c.println(c.style.success.Render("✓ " + msg))
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
