package utils

import (
	"time"

	"github.com/pkg/errors"
)

const DateLayout = "2006-01-02"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(DateLayout, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// ParseOptionalDate devolve nil para string vazia
func ParseOptionalDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}
	return ParseDate(dateStr)
}

// Truncate zera o horário mantendo apenas a data em UTC
func Truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDateRange lê start_date/end_date; sem valores usa os últimos defaultDays dias até ontem
func ParseDateRange(startStr, endStr string, defaultDays int, now time.Time) (time.Time, time.Time, error) {
	end := Truncate(now).AddDate(0, 0, -1)
	if endStr != "" {
		parsed, err := time.Parse(DateLayout, endStr)
		if err != nil {
			return time.Time{}, time.Time{}, errors.Wrap(err, "end_date")
		}
		end = parsed
	}

	start := end.AddDate(0, 0, -(defaultDays - 1))
	if startStr != "" {
		parsed, err := time.Parse(DateLayout, startStr)
		if err != nil {
			return time.Time{}, time.Time{}, errors.Wrap(err, "start_date")
		}
		start = parsed
	}

	if start.After(end) {
		return time.Time{}, time.Time{}, errors.New("start_date deve ser anterior a end_date")
	}

	return start, end, nil
}
