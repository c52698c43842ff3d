package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/wallplanner/internal/calendar"
	"github.com/alexanderramin/wallplanner/internal/domain"
)

// FormatState summarizes a stored session. A nil state reads as empty.
func FormatState(st *domain.StoredPlannerState, backend string) string {
	var b strings.Builder
	b.WriteString(Header("Stored session"))
	b.WriteString("\n")
	b.WriteString(kv("Backend", backend))
	if st == nil {
		b.WriteString(kv("State", Dim("none (defaults will be used)")))
		return b.String()
	}
	b.WriteString(kv("Month", fmt.Sprintf("%s %d", calendar.MonthName(st.Month), st.Year)))
	b.WriteString(kv("Preset", string(st.Settings.PaperPreset)))
	b.WriteString(kv("Columns", fmt.Sprintf("%d", len(st.Settings.Columns))))
	if errs := domain.ValidateSettings(&st.Settings); len(errs) > 0 {
		b.WriteString(kv("Problems", StyleRed.Render(fmt.Sprintf("%d", len(errs)))))
		for _, err := range errs {
			b.WriteString("    " + StyleRed.Render("✖ "+err.Error()) + "\n")
		}
	}
	return b.String()
}
