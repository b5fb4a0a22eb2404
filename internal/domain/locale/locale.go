// Package locale holds the name tables consulted when rendering and
// recognising name fields (weekdays, months, eras, am/pm).
package locale

import (
	"fmt"

	"github.com/kailas-cloud/dateformat/internal/domain"
)

// DefaultName is the locale used when none is selected.
const DefaultName = "en"

// List sizes every locale must provide.
const (
	EraCount   = 2
	MonthCount = 12
	DayCount   = 7
	AmPmCount  = 2
)

// Names is a pair of abbreviated and full name lists of equal length.
type Names struct {
	Abbr []string `yaml:"abbr" json:"abbr"`
	Full []string `yaml:"full" json:"full"`
}

// Locale is one language's name table.
// Era index 0 is BC, day index 0 is Sunday, am/pm index 1 is PM.
type Locale struct {
	Name  string `yaml:"name" json:"name"`
	Era   Names  `yaml:"era" json:"era"`
	Month Names  `yaml:"month" json:"month"`
	Day   Names  `yaml:"day" json:"day"`
	AmPm  Names  `yaml:"am_pm" json:"am_pm"`
}

// English is the built-in default table.
var English = Locale{
	Name: DefaultName,
	Era: Names{
		Abbr: []string{"BC", "AD"},
		Full: []string{"B.C.", "A.D."},
	},
	Month: Names{
		Abbr: []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun",
			"Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		Full: []string{"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December"},
	},
	Day: Names{
		Abbr: []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		Full: []string{"Sunday", "Monday", "Tuesday", "Wednesday",
			"Thursday", "Friday", "Saturday"},
	},
	AmPm: Names{
		Abbr: []string{"AM", "PM"},
		Full: []string{"A.M.", "P.M."},
	},
}

// Validate checks list sizes and that no name is empty.
func (l Locale) Validate() error {
	if l.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidLocale)
	}
	checks := []struct {
		field string
		names Names
		size  int
	}{
		{"era", l.Era, EraCount},
		{"month", l.Month, MonthCount},
		{"day", l.Day, DayCount},
		{"am_pm", l.AmPm, AmPmCount},
	}
	for _, c := range checks {
		if err := c.names.validate(c.size); err != nil {
			return fmt.Errorf("%w: %s.%s: %w", domain.ErrInvalidLocale, l.Name, c.field, err)
		}
	}
	return nil
}

func (n Names) validate(size int) error {
	if len(n.Abbr) != size {
		return fmt.Errorf("abbr has %d entries, want %d", len(n.Abbr), size)
	}
	if len(n.Full) != size {
		return fmt.Errorf("full has %d entries, want %d", len(n.Full), size)
	}
	for i := 0; i < size; i++ {
		if n.Abbr[i] == "" || n.Full[i] == "" {
			return fmt.Errorf("entry %d is empty", i)
		}
	}
	return nil
}

// Index returns the position of name in list, or -1.
func Index(list []string, name string) int {
	for i, s := range list {
		if s == name {
			return i
		}
	}
	return -1
}

func (l Locale) clone() Locale {
	cp := func(n Names) Names {
		return Names{
			Abbr: append([]string(nil), n.Abbr...),
			Full: append([]string(nil), n.Full...),
		}
	}
	return Locale{Name: l.Name, Era: cp(l.Era), Month: cp(l.Month), Day: cp(l.Day), AmPm: cp(l.AmPm)}
}
