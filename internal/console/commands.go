// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package console

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-note-keeper/models"
)

func (c *Console) addNote(ctx context.Context) error {
	c.header("ADD NEW NOTE")

	title, err := c.readLine(c.style.title.Render("Title:") + " ")
	if err != nil {
		return err
	}
	if title == "" {
		c.fail("Title cannot be empty!")
		return nil
	}

	c.println(c.style.info.Render("Content (type 'END' on a new line to finish):"))
	lines, _, err := c.readContent(false)
	if err != nil {
		return err
	}

	tagsLine, err := c.readLine("Enter tags (comma-separated, press Enter to skip): ")
	if err != nil {
		return err
	}

	note, err := c.notes.Create(ctx, models.NewNoteRequest{
		Title:   title,
		Content: strings.Join(lines, "\n"),
		Tags:    parseTags(tagsLine),
	})
	if err != nil {
		c.reportStoreError(err)
		return nil
	}

	c.ok("Note added successfully! ID: " + c.style.label.Render(note.ID))
	return nil
}

func (c *Console) listNotes(ctx context.Context) error {
	c.header("ALL NOTES")

	notes, err := c.notes.List(ctx)
	if err != nil {
		c.reportStoreError(err)
		return nil
	}
	if len(notes) == 0 {
		c.println(c.style.info.Render("No notes found."))
		return nil
	}

	c.printf("%s %d\n", c.style.info.Render("Total notes:"), len(notes))
	for i, note := range notes {
		c.printf("[%2d] %s %s\n", i+1, c.style.title.Render(note.Title), c.style.muted.Render("("+preview(note.Content)+")"))
		if len(note.Tags) > 0 {
			c.println("     " + c.renderTags(note.Tags, "[", "]"))
		}
	}
	return nil
}

func (c *Console) viewNote(ctx context.Context) error {
	c.header("VIEW NOTE")

	index, ok, err := c.readIndex("Enter note number to view:")
	if err != nil || !ok {
		return err
	}

	note, err := c.notes.GetByIndex(ctx, index)
	if err != nil {
		c.reportStoreError(err)
		return nil
	}

	rule := c.style.muted.Render(strings.Repeat("─", ruleWidth))
	c.println(rule)
	c.printf("%s: %s\n", c.style.label.Render("ID"), note.ID)
	c.printf("%s: %s\n", c.style.label.Render("Title"), note.Title)
	c.printf("%s:\n%s\n", c.style.label.Render("Content"), note.Content)
	if len(note.Tags) > 0 {
		c.printf("%s: %s\n", c.style.label.Render("Tags"), c.renderTags(note.Tags, "#", ""))
	}
	c.printf("%s: %s\n", c.style.label.Render("Created"), note.CreatedAt.Format(timeLayout))
	c.printf("%s: %s\n", c.style.label.Render("Updated"), note.UpdatedAt.Format(timeLayout))
	c.println(rule)
	return nil
}

func (c *Console) searchNotes(ctx context.Context) error {
	c.header("SEARCH NOTES")

	query, err := c.readLine(c.style.prompt.Render("Enter search query:") + " ")
	if err != nil || query == "" {
		return err
	}

	found, err := c.notes.Search(ctx, query)
	if err != nil {
		c.reportStoreError(err)
		return nil
	}
	if len(found) == 0 {
		c.println(c.style.info.Render(fmt.Sprintf("No notes found matching '%s'", query)))
		return nil
	}

	c.println(c.style.success.Render(fmt.Sprintf("Found %d notes:", len(found))))
	for i, note := range found {
		c.printf("[%2d] %s %s\n", i+1, c.style.title.Render(note.Title),
			c.style.muted.Render(fmt.Sprintf("(%d chars)", utf8.RuneCountInString(note.Content))))
	}
	return nil
}

func (c *Console) updateNote(ctx context.Context) error {
	c.header("UPDATE NOTE")

	index, ok, err := c.readIndex("Enter note number to update:")
	if err != nil || !ok {
		return err
	}

	current, err := c.notes.GetByIndex(ctx, index)
	if err != nil {
		c.reportStoreError(err)
		return nil
	}

	c.println(c.style.info.Render("Leave field blank to keep current value."))

	var upd models.NoteUpdate

	title, err := c.readLine(fmt.Sprintf("%s [%s]: ", c.style.title.Render("Title"), current.Title))
	if err != nil {
		return err
	}
	if title != "" {
		upd.Title = &title
	}

	c.println(c.style.info.Render("Content (type 'END' on new line to finish, 'KEEP' to keep current):"))
	c.println(c.style.muted.Render("Current content:"))
	c.println(current.Content)

	lines, keep, err := c.readContent(true)
	if err != nil {
		return err
	}
	if !keep && len(lines) > 0 {
		content := strings.Join(lines, "\n")
		upd.Content = &content
	}

	tagsLine, err := c.readLine(fmt.Sprintf("%s [%s]: ", c.style.tag.Render("Tags"), strings.Join(current.Tags, ", ")))
	if err != nil {
		return err
	}
	if tagsLine != "" {
		upd.Tags = parseTags(tagsLine)
	}

	if _, err = c.notes.Update(ctx, current.ID, upd); err != nil {
		c.reportStoreError(err)
		return nil
	}

	c.ok("Note updated successfully!")
	return nil
}

func (c *Console) deleteNote(ctx context.Context) error {
	c.header("DELETE NOTE")

	index, ok, err := c.readIndex("Enter note number to delete:")
	if err != nil || !ok {
		return err
	}

	if err = c.notes.DeleteByIndex(ctx, index); err != nil {
		c.reportStoreError(err)
		return nil
	}

	c.ok("Note deleted successfully!")
	return nil
}

func (c *Console) copyNote(ctx context.Context) error {
	c.header("COPY NOTE")

	index, ok, err := c.readIndex("Enter note number to copy:")
	if err != nil || !ok {
		return err
	}

	note, err := c.notes.GetByIndex(ctx, index)
	if err != nil {
		c.reportStoreError(err)
		return nil
	}

	if err = c.copyToClipboard(note.Content); err != nil {
		c.logger.Err(err).Msg("clipboard write failed")
		c.fail("Could not copy to clipboard: " + err.Error())
		return nil
	}

	c.ok(fmt.Sprintf("Content of '%s' copied to clipboard!", note.Title))
	return nil
}

func (c *Console) renderTags(tags []string, prefix, suffix string) string {
	rendered := make([]string, len(tags))
	for i, tag := range tags {
		rendered[i] = c.style.tag.Render(prefix + tag + suffix)
	}
	return strings.Join(rendered, " ")
}
