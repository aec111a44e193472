package utils

import "time"

// ParseDate aceita vazio (devolve nil) ou uma data no formato 2006-01-02
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}
