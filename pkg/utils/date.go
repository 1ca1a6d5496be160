package utils

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// ParseDate interpreta datas no formato yyyy-mm-dd. String vazia retorna a data zero.
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(DateLayout, dateStr)
		if err != nil {
			return nil, fmt.Errorf("data inválida %q, use o formato yyyy-mm-dd: %w", dateStr, err)
		}

		date = incomingDate
	}

	return &date, nil
}

func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
