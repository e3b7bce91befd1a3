package view

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"
	"time"

	"github.com/clinicos/console/internal/core/domain"
)

func funcMap() template.FuncMap {
	return template.FuncMap{
		"timeago":  timeAgo,
		"money":    money,
		"percent":  percent,
		"segcolor": segmentColor,
		"shorttime": func(t time.Time) string {
			if t.IsZero() {
				return "—"
			}
			return t.Local().Format("15:04")
		},
		"datetime": func(t time.Time) string {
			if t.IsZero() {
				return "—"
			}
			return t.Local().Format("Jan 2, 2006 15:04")
		},
	}
}

// timeAgo renders a relative timestamp: minutes, then hours, then the date.
func timeAgo(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return t.Local().Format("Jan 2, 2006")
	}
}

// money renders a currency amount with thousands separators, no cents.
func money(v float64) string {
	whole := strconv.FormatInt(int64(v), 10)
	neg := strings.HasPrefix(whole, "-")
	if neg {
		whole = whole[1:]
	}

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := "$" + b.String()
	if neg {
		out = "-" + out
	}
	return out
}

// percent renders a [0,1] confidence as a whole percentage.
func percent(v float64) string {
	return fmt.Sprintf("%.0f%%", v*100)
}

func segmentColor(s domain.Segment) string {
	return s.Color()
}
