// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui holds the terminal prompt used by the admin bootstrap tool.
package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-design-gallery/internal/validators"
	"github.com/MKhiriev/go-design-gallery/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	usernameInput = iota
	passwordInput
)

// CredentialsModel asks for an admin username and a masked password.
// Enter on the password field validates both and finishes the program.
type CredentialsModel struct {
	inputs    []textinput.Model
	focus     int
	validator validators.Validator

	submitted bool
	quit      bool
	errMsg    string
}

// NewCredentialsModel pre-fills the username and focuses the first empty field.
func NewCredentialsModel(username string) CredentialsModel {
	usernameField := textinput.New()
	usernameField.Placeholder = "admin"
	usernameField.CharLimit = 50
	usernameField.Width = 40
	usernameField.SetValue(username)

	passwordField := textinput.New()
	passwordField.Placeholder = "password"
	passwordField.CharLimit = 72
	passwordField.Width = 40
	passwordField.EchoMode = textinput.EchoPassword
	passwordField.EchoCharacter = '*'

	m := CredentialsModel{
		inputs:    []textinput.Model{usernameField, passwordField},
		validator: validators.NewUserValidator(),
	}
	if strings.TrimSpace(username) == "" {
		m.focus = usernameInput
	} else {
		m.focus = passwordInput
	}
	m.inputs[m.focus].Focus()

	return m
}

func (m CredentialsModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m CredentialsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateFocused(msg)
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		m.quit = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.tab):
		return m.setFocus((m.focus + 1) % len(m.inputs)), nil
	case key.Matches(keyMsg, keys.backtab):
		return m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs)), nil
	case key.Matches(keyMsg, keys.enter):
		if m.focus == usernameInput {
			return m.setFocus(passwordInput), nil
		}
		return m.submit()
	}

	return m.updateFocused(msg)
}

func (m CredentialsModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Design Gallery admin account"))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Username") + m.inputs[usernameInput].View() + "\n")
	b.WriteString(labelStyle.Render("Password") + m.inputs[passwordInput].View() + "\n")
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("tab: next field • enter: submit • esc: cancel"))

	return appStyle.Render(b.String())
}

// Credentials returns the entered values with the username trimmed.
func (m CredentialsModel) Credentials() models.UserCreate {
	return models.UserCreate{
		Username: strings.TrimSpace(m.inputs[usernameInput].Value()),
		Password: m.inputs[passwordInput].Value(),
	}
}

func (m CredentialsModel) submit() (tea.Model, tea.Cmd) {
	if err := m.validator.Validate(context.Background(), m.Credentials()); err != nil {
		m.errMsg = errorText(err)
		return m, nil
	}

	m.errMsg = ""
	m.submitted = true
	return m, tea.Quit
}

func (m CredentialsModel) setFocus(i int) CredentialsModel {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
	return m
}

func (m CredentialsModel) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// errorText strips the shared "invalid input" prefix.
func errorText(err error) string {
	if errors.Is(err, validators.ErrInvalidInput) {
		return strings.TrimPrefix(err.Error(), validators.ErrInvalidInput.Error()+": ")
	}
	return err.Error()
}

// PromptCredentials runs the prompt on the terminal and returns what was
// entered. Cancelling yields [ErrUserQuit].
func PromptCredentials(username string) (models.UserCreate, error) {
	final, err := tea.NewProgram(NewCredentialsModel(username)).Run()
	if err != nil {
		return models.UserCreate{}, err
	}

	result, ok := final.(CredentialsModel)
	if !ok {
		return models.UserCreate{}, tea.ErrProgramKilled
	}
	if result.quit || !result.submitted {
		return models.UserCreate{}, ErrUserQuit
	}

	return result.Credentials(), nil
}
