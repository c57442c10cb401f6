package model

import "strconv"

// DriverID uniquely identifies a driver, in firstname_lastname form
type DriverID string

// RaceHistory maps race name to the list of result entries for that race
type RaceHistory map[string][]string

// SeasonHistory maps competition name to that competition's races
type SeasonHistory map[string]RaceHistory

// DriverRecord is a driver's biographical and participation data
// as served by the entity store
type DriverRecord struct {
	ID          DriverID                 `json:"id"`
	FirstName   string                   `json:"firstname"`
	LastName    string                   `json:"lastname"`
	Nationality string                   `json:"nationality,omitempty"`
	Birthdate   string                   `json:"birthdate,omitempty"`
	Deathdate   string                   `json:"deathdate,omitempty"`
	Seasons     map[string]SeasonHistory `json:"seasons,omitempty"`
}

// TotalResults sums the result entries across all seasons, competitions and races
func (d *DriverRecord) TotalResults() int {
	total := 0
	for _, season := range d.Seasons {
		for _, competition := range season {
			for _, results := range competition {
				total += len(results)
			}
		}
	}
	return total
}

// ActiveIn reports whether the driver has a season in any of the given years
func (d *DriverRecord) ActiveIn(years ...int) bool {
	for _, year := range years {
		if _, ok := d.Seasons[strconv.Itoa(year)]; ok {
			return true
		}
	}
	return false
}
