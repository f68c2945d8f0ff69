package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

func Location(tz string) *time.Location {
	if tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

// DateOf formata o instante como data civil (AAAA-MM-DD), o formato usado
// em openedAt/closedAt e lastMaintenanceDate.
func DateOf(t time.Time) string {
	return t.Format("2006-01-02")
}

func Today() string {
	return DateOf(Now())
}
