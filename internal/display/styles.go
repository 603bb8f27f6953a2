// Package display renders generated passwords to the terminal: the banner,
// strength reports and the optional reveal animations.
package display

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Palette
var (
	Cyan    = lipgloss.Color("#00BCD4")
	Green   = lipgloss.Color("#8BC34A")
	Magenta = lipgloss.Color("#E040FB")
	Yellow  = lipgloss.Color("#FFC107")
	Red     = lipgloss.Color("#E53935")
	White   = lipgloss.Color("#FFFFFF")
)

// Styles groups the lipgloss styles used by the Printer and animations.
type Styles struct {
	Header   lipgloss.Style
	Title    lipgloss.Style
	Password lipgloss.Style
	Label    lipgloss.Style
	Notice   lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Masked   lipgloss.Style
	Matrix   lipgloss.Style
	Flash    lipgloss.Style
}

// NewStyles builds styles bound to a renderer for w. With color disabled every
// style is plain text.
func NewStyles(w io.Writer, color bool) Styles {
	r := lipgloss.NewRenderer(w)
	if !color {
		plain := r.NewStyle()
		return Styles{
			Header: plain, Title: plain, Password: plain, Label: plain, Notice: plain,
			Success: plain, Error: plain, Masked: plain, Matrix: plain, Flash: plain,
		}
	}

	return Styles{
		Header:   r.NewStyle().Foreground(Cyan).Bold(true),
		Title:    r.NewStyle().Foreground(Green).Bold(true),
		Password: r.NewStyle().Foreground(Magenta).Bold(true),
		Label:    r.NewStyle().Foreground(Cyan),
		Notice:   r.NewStyle().Foreground(Yellow),
		Success:  r.NewStyle().Foreground(Green),
		Error:    r.NewStyle().Foreground(Red).Bold(true),
		Masked:   r.NewStyle().Foreground(Cyan),
		Matrix:   r.NewStyle().Foreground(Green),
		Flash:    r.NewStyle().Foreground(White).Bold(true),
	}
}

// ScoreStyle colors a strength score: green from 70, yellow from 50, red below.
func (s Styles) ScoreStyle(score int) lipgloss.Style {
	switch {
	case score >= 70:
		return s.Success
	case score >= 50:
		return s.Notice
	default:
		return s.Error
	}
}
