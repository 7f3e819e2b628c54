package format

import (
	"fmt"
	"time"
)

var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

var monthNames = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// parse accepts offsets, local date-times and plain dates. Values without an
// offset are read in the formatter's location.
func (f *Formatter) parse(value string) (time.Time, bool) {
	for _, layout := range layouts {
		if layout == time.RFC3339Nano {
			if t, err := time.Parse(layout, value); err == nil {
				return t.In(f.location), true
			}
			continue
		}
		if t, err := time.ParseInLocation(layout, value, f.location); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Date renders dd/mm/yyyy. Unparseable values are returned unchanged.
func (f *Formatter) Date(value string) string {
	t, ok := f.parse(value)
	if !ok {
		return value
	}
	return t.Format("02/01/2006")
}

// DateTime renders dd/mm/yyyy hh:mm.
func (f *Formatter) DateTime(value string) string {
	t, ok := f.parse(value)
	if !ok {
		return value
	}
	return t.Format("02/01/2006 15:04")
}

// Timestamp renders a decoded timestamp as dd/mm/yyyy hh:mm.
func (f *Formatter) Timestamp(t time.Time) string {
	if t.IsZero() {
		return placeholder
	}
	return t.In(f.location).Format("02/01/2006 15:04")
}

// LongDate renders "1 de marzo de 2025".
func (f *Formatter) LongDate(value string) string {
	t, ok := f.parse(value)
	if !ok {
		return value
	}
	return fmt.Sprintf("%d de %s de %d", t.Day(), monthNames[t.Month()-1], t.Year())
}

// LongTimestamp renders "1 mar 2025, 10:05:00".
func (f *Formatter) LongTimestamp(t time.Time) string {
	if t.IsZero() {
		return placeholder
	}
	t = t.In(f.location)
	return fmt.Sprintf("%d %s %d, %s", t.Day(), monthNames[t.Month()-1][:3], t.Year(), t.Format("15:04:05"))
}
