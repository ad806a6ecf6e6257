package app

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Raj-Mandhyan/EduGenie3/internal/lesson"
	"github.com/Raj-Mandhyan/EduGenie3/internal/router"
)

type nopGenerator struct{}

func (nopGenerator) Generate(context.Context, lesson.Request) (*lesson.Result, error) {
	return &lesson.Result{}, nil
}

func TestStartsOnWelcomeThenForm(t *testing.T) {
	m := newAppModel(Options{Generator: nopGenerator{}, Endpoint: lesson.DefaultEndpoint})
	assert.Equal(t, "", m.router.Active().Title())

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	require.NotNil(t, cmd)

	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok, "expected a screen replacement")
	m.Update(msg)

	assert.Equal(t, "New Lesson", m.router.Active().Title())
	assert.Equal(t, 1, m.router.Depth())
}

func TestCtrlCQuits(t *testing.T) {
	m := newAppModel(Options{Generator: nopGenerator{}})
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestFooterHintsFollowActiveScreen(t *testing.T) {
	m := newAppModel(Options{Generator: nopGenerator{}})

	hints := m.footerHints(m.router.Active())
	require.NotEmpty(t, hints)
	assert.Equal(t, "Any key", hints[0].Key)

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	m.Update(cmd())

	hints = m.footerHints(m.router.Active())
	require.NotEmpty(t, hints)
	assert.Equal(t, "Tab", hints[0].Key)
}

func TestWindowSizeIsTracked(t *testing.T) {
	m := newAppModel(Options{Generator: nopGenerator{}})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	am := updated.(AppModel)
	assert.Equal(t, 120, am.width)
	assert.Equal(t, 40, am.height)
}

func TestHelpPushAndEscPop(t *testing.T) {
	m := newAppModel(Options{Generator: nopGenerator{}, Endpoint: lesson.DefaultEndpoint})
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	m.Update(cmd())

	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyF1})
	require.NotNil(t, cmd)
	m.Update(cmd())
	assert.Equal(t, "Help", m.router.Active().Title())
	assert.Equal(t, 2, m.router.Depth())

	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	m.Update(cmd())
	assert.Equal(t, "New Lesson", m.router.Active().Title())
	assert.Equal(t, 1, m.router.Depth())
}

func TestEscOnFormIsForwarded(t *testing.T) {
	m := newAppModel(Options{Generator: nopGenerator{}})
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	m.Update(cmd())

	m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Equal(t, 1, m.router.Depth())
	assert.Equal(t, "New Lesson", m.router.Active().Title())
}
