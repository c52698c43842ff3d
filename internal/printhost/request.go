// Package printhost serves the print route: it resolves settings from a
// print link, the stored session or the Letter template, renders one month
// or a whole year, and returns a page that opens the browser print dialog.
package printhost

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/wallplanner/internal/codec"
	"github.com/alexanderramin/wallplanner/internal/domain"
)

const (
	ParamYear     = "y"
	ParamMonth    = "m"
	ParamSettings = "s"
	ParamMode     = "mode"
	ModeYear      = "year"

	minYear = 1900
	maxYear = 2100
)

// Request is a parsed print route query.
type Request struct {
	Year     int
	Month    int
	Encoded  string
	YearMode bool
}

// ParseRequest reads y, m, s and mode from q. Missing, unparsable or out of
// range year and month values fall back to now.
func ParseRequest(q url.Values, now time.Time) Request {
	req := Request{
		Year:     now.Year(),
		Month:    int(now.Month()),
		Encoded:  strings.TrimSpace(q.Get(ParamSettings)),
		YearMode: q.Get(ParamMode) == ModeYear,
	}
	if y, err := strconv.Atoi(strings.TrimSpace(q.Get(ParamYear))); err == nil && y >= minYear && y <= maxYear {
		req.Year = y
	}
	if m, err := strconv.Atoi(strings.TrimSpace(q.Get(ParamMonth))); err == nil && m >= 1 && m <= 12 {
		req.Month = m
	}
	return req
}

// Link builds a self-contained print link for s. base is an optional
// scheme and host prefix such as "http://localhost:8421". Year links leave
// out the month.
func Link(base string, year, month int, s domain.PlannerSettings, yearMode bool) (string, error) {
	payload, err := codec.Encode(s)
	if err != nil {
		return "", fmt.Errorf("encoding print link settings: %w", err)
	}

	var b strings.Builder
	b.WriteString(strings.TrimRight(base, "/"))
	b.WriteString("/print?")
	b.WriteString(ParamYear + "=" + strconv.Itoa(year))
	if !yearMode {
		b.WriteString("&" + ParamMonth + "=" + strconv.Itoa(month))
	}
	b.WriteString("&" + ParamSettings + "=" + url.QueryEscape(payload))
	if yearMode {
		b.WriteString("&" + ParamMode + "=" + ModeYear)
	}
	return b.String(), nil
}
