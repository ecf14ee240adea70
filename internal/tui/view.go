// Copyright (c) 2026 Keymaster Team
// Impassword - password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/impassword/buildvars"
	"github.com/toeirei/impassword/internal/core"
	"github.com/toeirei/impassword/internal/i18n"
	"github.com/toeirei/impassword/internal/model"
	"github.com/toeirei/impassword/internal/strength"
)

const meterSegments = 5

// View renders the whole screen.
func (m Model) View() string {
	st := m.session.Snapshot()

	var b strings.Builder
	b.WriteString(mainTitleStyle.Render(i18n.T("app.title")))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(i18n.T("app.subtitle")))
	b.WriteString("\n\n")

	b.WriteString(m.viewPassword(st))
	b.WriteString("\n")
	b.WriteString(m.viewStrength(st.Strength))
	b.WriteString("\n")
	b.WriteString(m.viewOptions(st.Options))
	b.WriteString("\n\n")
	b.WriteString(m.viewFooter())

	return docStyle.Render(b.String())
}

func (m Model) viewPassword(st core.State) string {
	var content string
	if st.Password == "" {
		content = placeholderStyle.Render(i18n.T("password.placeholder"))
	} else {
		content = st.Password
	}
	line := passwordBoxStyle.Render(content)
	if m.copied {
		line = lipgloss.JoinHorizontal(lipgloss.Center, line, "  ", successStyle.Render(i18n.T("password.copied")))
	}
	return line
}

func (m Model) viewStrength(l strength.Level) string {
	label := i18n.T(l.MessageID())
	head := AlignFooter(i18n.T("strength.label"), strengthStyle(l).Render(label), 40)
	return head + "\n" + renderMeter(l)
}

// renderMeter draws the five-segment strength bar.
func renderMeter(l strength.Level) string {
	filled := strengthStyle(l)
	segs := make([]string, 0, meterSegments)
	for i := 0; i < meterSegments; i++ {
		if i < l.Bars() {
			segs = append(segs, filled.Render("██████"))
		} else {
			segs = append(segs, meterTrackStyle.Render("██████"))
		}
	}
	return strings.Join(segs, " ")
}

func (m Model) viewOptions(o model.Options) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(i18n.T("options.title")))
	b.WriteString("\n")

	for row := rowLength; row < rowCount; row++ {
		var line string
		switch row {
		case rowLength:
			line = fmt.Sprintf("%s  ◀ %s ▶", i18n.T("options.length"), lengthValueStyle.Render(fmt.Sprintf("%d", o.Length)))
		case rowExcludeAmbiguous:
			line = checkbox(o.ExcludeAmbiguous) + " " + i18n.T("options.exclude_ambiguous")
		default:
			c := rowCategory[row]
			line = checkbox(o.Includes(c)) + " " + i18n.T("options."+c.String())
		}

		if row == m.cursor {
			b.WriteString(selectedItemStyle.Render("> " + line))
		} else {
			b.WriteString(itemStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func (m Model) viewFooter() string {
	var status string
	if text, isErr, _ := m.status.get(); text != "" {
		if isErr {
			status = statusMessageStyle.Inherit(errorStyle).Render(text)
		} else {
			status = statusMessageStyle.Inherit(successStyle).Render(text)
		}
	}
	width := m.width - 4
	if width < 40 {
		width = 40
	}
	right := helpStyle.Render(fmt.Sprintf("%d-%d · %s", core.MinLength, core.MaxLength, buildvars.VersionOrDefault("dev")))
	return AlignFooter(status, right, width) + "\n" + m.help.View(m.keys)
}
