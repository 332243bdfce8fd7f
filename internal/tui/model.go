// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/franny-sync/internal/client"
	"github.com/MKhiriev/franny-sync/models"
)

const maxLogLines = 6

type mode int

const (
	modeStatus mode = iota
	modePassphrase
	modeBookmark
	modeInfo
)

type statusModel struct {
	ctrl Controller
	info models.AppBuildInfo

	mode     mode
	view     client.View
	minutes  int
	log      []string
	spinner  spinner.Model
	input    textinput.Model
	hasInput bool
}

func newStatusModel(ctrl Controller, info models.AppBuildInfo, interval time.Duration) statusModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return statusModel{
		ctrl:    ctrl,
		info:    info,
		minutes: max(int(interval/time.Minute), 1),
		spinner: s,
	}
}

func (m statusModel) Init() tea.Cmd {
	m.ctrl.Refresh()
	return m.spinner.Tick
}

func (m statusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case viewMsg:
		m.view = msg.view
		if msg.view.Interval > 0 {
			m.minutes = int(msg.view.Interval / time.Minute)
		}
		if msg.view.Message != "" {
			m.log = append(m.log, m.renderMessage(msg.view))
			if len(m.log) > maxLogLines {
				m.log = m.log[len(m.log)-maxLogLines:]
			}
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.mode == modePassphrase || m.mode == modeBookmark {
			return m.updateInput(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m statusModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == modeInfo {
		if key.Matches(msg, keys.esc) {
			m.mode = modeStatus
		}
		if key.Matches(msg, keys.quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.test):
		m.ctrl.RunSync(models.DirectionTest, "")
	case key.Matches(msg, keys.push):
		m.ctrl.RunSync(models.DirectionPush, "")
	case key.Matches(msg, keys.pull):
		m.ctrl.RunSync(models.DirectionPull, "")
	case key.Matches(msg, keys.sync):
		m.ctrl.RunSync(models.DirectionSync, "")
	case key.Matches(msg, keys.auto):
		m.ctrl.SetAutoSync(!m.view.Enabled, m.minutes)
	case key.Matches(msg, keys.longer):
		m.minutes++
		if m.view.Enabled {
			m.ctrl.SetAutoSync(true, m.minutes)
		}
	case key.Matches(msg, keys.shorter):
		m.minutes = max(m.minutes-1, 1)
		if m.view.Enabled {
			m.ctrl.SetAutoSync(true, m.minutes)
		}
	case key.Matches(msg, keys.passphrase):
		m.mode = modePassphrase
		m.input = newInput("Sync passphrase", true)
		return m, textinput.Blink
	case key.Matches(msg, keys.bookmark):
		m.mode = modeBookmark
		m.input = newInput("https://", false)
		return m, textinput.Blink
	case key.Matches(msg, keys.info):
		m.mode = modeInfo
	}

	return m, nil
}

func (m statusModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.mode = modeStatus
		return m, nil
	case key.Matches(msg, keys.enter):
		value := strings.TrimSpace(m.input.Value())
		if m.mode == modePassphrase {
			m.ctrl.SetPassphraseInput(value)
			m.hasInput = value != ""
		} else if value != "" {
			m.ctrl.AddBookmark(value)
		}
		m.mode = modeStatus
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m statusModel) View() string {
	switch m.mode {
	case modeInfo:
		return appStyle.Render(renderBuildInfoWindow(m.info))
	case modePassphrase:
		return appStyle.Render(renderPage("SYNC PASSPHRASE", m.input.View(), "enter: keep for this session  esc: cancel"))
	case modeBookmark:
		return appStyle.Render(renderPage("ADD BOOKMARK", m.input.View(), "enter: add  esc: cancel"))
	}

	return appStyle.Render(renderPage("FRANNY SYNC", m.renderStatus(),
		"t: test  p: push  l: pull  s: sync  a: auto on/off  +/-: interval  k: passphrase  b: bookmark  i: about"))
}

func (m statusModel) renderStatus() string {
	var b strings.Builder

	enabled := "off"
	if m.view.Enabled {
		enabled = okStyle.Render("on")
	}
	b.WriteString(field("Sync:", enabled))
	b.WriteString("\n")
	b.WriteString(field("Last sync:", formatTime(m.view.LastSync)))
	b.WriteString("\n")

	auto := fmt.Sprintf("every %d min", m.minutes)
	if m.view.AutoArmed && !m.view.NextRun.IsZero() {
		auto += ", next " + m.view.NextRun.Local().Format("15:04:05")
	} else if !m.view.AutoArmed {
		auto += " (idle)"
	}
	b.WriteString(field("Auto-sync:", auto))
	b.WriteString("\n")

	passphrase := "stored or none"
	if m.hasInput {
		passphrase = "typed"
	}
	b.WriteString(field("Passphrase:", passphrase))
	b.WriteString("\n")
	b.WriteString(field("Bookmarks:", fmt.Sprint(m.view.Bookmarks)))
	b.WriteString("\n")
	b.WriteString(field("History:", fmt.Sprint(m.view.History)))
	b.WriteString("\n\n")

	if m.view.Busy {
		b.WriteString(m.spinner.View() + " Syncing...\n")
	}
	for _, line := range m.log {
		b.WriteString(line)
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m statusModel) renderMessage(v client.View) string {
	stamp := time.Now().Format("15:04:05") + "  "
	if v.Result != nil && !v.Result.Success {
		return stamp + errorStyle.Render(v.Message)
	}
	if v.Result != nil {
		return stamp + okStyle.Render(v.Message)
	}
	return stamp + v.Message
}

func newInput(placeholder string, secret bool) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Width = 40
	if secret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
	}
	in.Focus()
	return in
}
