package panel

import (
	"fmt"
	"math"
	"strconv"

	"github.com/alexanderramin/wallplanner/internal/domain"
)

type Tone string

const (
	ToneOK   Tone = "ok"
	ToneWarn Tone = "warn"
	ToneBad  Tone = "bad"
)

// Width compares the printable width of the page with the total width of
// the grid. All values are rounded to 0.1mm.
type Width struct {
	UsableMm float64
	TotalMm  float64
	DeltaMm  float64
	Tone     Tone
	Text     string
}

// WidthStatus reports whether the columns fit between the side margins.
func WidthStatus(s domain.PlannerSettings) Width {
	total := s.DayColWidthMm
	for _, c := range s.Columns {
		total += c.WidthMm
	}
	w := Width{
		UsableMm: round1(s.PageWidthMm - s.MarginLeftMm - s.MarginRightMm),
		TotalMm:  round1(total),
	}
	w.DeltaMm = round1(w.UsableMm - w.TotalMm)

	switch {
	case math.Abs(w.DeltaMm) < 1:
		w.Tone, w.Text = ToneOK, "Fits nicely."
	case w.DeltaMm > 0:
		w.Tone, w.Text = ToneWarn, fmt.Sprintf("You have ~%smm extra width.", mm(w.DeltaMm))
	default:
		w.Tone, w.Text = ToneBad, fmt.Sprintf("Over by ~%smm, columns may overflow.", mm(-w.DeltaMm))
	}
	return w
}

func round1(x float64) float64 {
	return math.Floor(x*10+0.5) / 10
}

func mm(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
