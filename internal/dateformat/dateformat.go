package dateformat

import (
	"fmt"
	"time"
)

// DefaultLayout renders DD/MM/YYYY HH:mm.
const DefaultLayout = "02/01/2006 15:04"

type Formatter struct {
	layout   string
	location *time.Location
}

func New(layout, timezone string) (*Formatter, error) {
	if layout == "" {
		layout = DefaultLayout
	}
	location, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", timezone, err)
	}
	return &Formatter{layout: layout, location: location}, nil
}

func (f *Formatter) FormatDate(t time.Time) string {
	return t.In(f.location).Format(f.layout)
}
