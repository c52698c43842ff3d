package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/wallplanner/internal/domain"
	"github.com/alexanderramin/wallplanner/internal/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// plannerDriver wraps teatest.Driver with access to the planner model.
type plannerDriver struct {
	*teatest.Driver
	app *App
}

func newPlannerDriver(t *testing.T) *plannerDriver {
	t.Helper()
	app := testApp(t)
	m := newPlannerModel(context.Background(), app)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()
	return &plannerDriver{Driver: d, app: app}
}

func (d *plannerDriver) model() *plannerModel {
	return d.Model.(*plannerModel)
}

func (d *plannerDriver) stored() domain.StoredPlannerState {
	d.T.Helper()
	st := d.app.State.Read(context.Background())
	require.NotNil(d.T, st)
	return *st
}

func TestTUI_InitialView(t *testing.T) {
	d := newPlannerDriver(t)

	assert.True(t, d.ViewContains("wallplanner"))
	assert.True(t, d.ViewContains("February 2024"))
	assert.True(t, d.ViewContains("NOTES"))
	assert.True(t, d.ViewContains("quit"))
	assert.Nil(t, d.app.State.Read(context.Background()), "opening the editor does not write")
}

func TestTUI_MonthNavigationPersists(t *testing.T) {
	d := newPlannerDriver(t)

	d.PressRight()
	assert.Equal(t, 3, d.model().state.Month)
	assert.Equal(t, 3, d.stored().Month)
	assert.True(t, d.ViewContains("March 2024"))

	d.PressLeft()
	d.PressLeft()
	d.PressKey('h')
	st := d.stored()
	assert.Equal(t, 2023, st.Year)
	assert.Equal(t, 12, st.Month)

	d.PressKey('t')
	assert.Equal(t, 2, d.stored().Month)
	assert.Equal(t, 2024, d.stored().Year)
}

func TestTUI_PresetCycles(t *testing.T) {
	d := newPlannerDriver(t)

	d.PressKey('p')
	s := d.stored().Settings
	assert.Equal(t, domain.PresetA3, s.PaperPreset)
	assert.Len(t, s.Columns, 5)
	assert.True(t, d.ViewContains("A3"))

	d.PressKey('p')
	assert.Equal(t, domain.PresetLetter, d.stored().Settings.PaperPreset)
}

func TestTUI_Toggles(t *testing.T) {
	d := newPlannerDriver(t)

	d.PressKeys("nmwf")

	s := d.stored().Settings
	assert.False(t, s.ShowMiniCalendars)
	assert.False(t, s.WeekStartsOnMonday)
	assert.Equal(t, domain.WeekendBlack, s.WeekendTextStyle)
	assert.Equal(t, domain.FontSerif, s.FontFamily)

	d.PressKeys("ff")
	assert.Equal(t, domain.FontSans, d.stored().Settings.FontFamily)
}

func TestTUI_RowHeightSteps(t *testing.T) {
	d := newPlannerDriver(t)

	d.PressKey('+')
	assert.InDelta(t, 7.8, d.stored().Settings.RowHeightMm, 1e-9)

	d.PressKeys("--")
	assert.InDelta(t, 7.6, d.stored().Settings.RowHeightMm, 1e-9)
}

func TestTUI_ColumnsKeepAtLeastOne(t *testing.T) {
	d := newPlannerDriver(t)

	d.PressKey('a')
	assert.Len(t, d.stored().Settings.Columns, 5)

	for range 6 {
		d.PressKey('x')
	}
	assert.Len(t, d.stored().Settings.Columns, 1)
	assert.True(t, d.ViewContains("cannot remove the last column"))
}

func TestTUI_PrintLink(t *testing.T) {
	d := newPlannerDriver(t)

	d.PressKey('o')
	assert.Contains(t, d.model().status, "http://localhost:8421/print?y=2024&m=2&s=")
}

func TestTUI_EditFormOpensAndCancels(t *testing.T) {
	d := newPlannerDriver(t)

	d.PressKey('e')
	require.NotNil(t, d.model().form)
	assert.True(t, d.ViewContains("Top (mm)"))

	// Planner keys go to the form while it is open.
	d.PressKey('q')
	assert.False(t, d.Quitting)

	d.PressEsc()
	assert.Nil(t, d.model().form)
	assert.True(t, d.ViewContains("Edit cancelled."))
	assert.Nil(t, d.app.State.Read(context.Background()))
}

func TestTUI_HelpToggle(t *testing.T) {
	d := newPlannerDriver(t)
	assert.False(t, d.ViewContains("remove last column"))

	d.PressKey('?')
	assert.True(t, d.ViewContains("remove last column"))
}

func TestTUI_Quit(t *testing.T) {
	d := newPlannerDriver(t)

	d.PressKey('q')
	assert.True(t, d.Quitting)
	assert.Empty(t, d.View())
}
