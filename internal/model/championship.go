package model

// Entry is a single car entry within an event session
type Entry struct {
	Car     string     `json:"car,omitempty"`
	Drivers []DriverID `json:"drivers,omitempty"`
}

// EventSession is one session within an event (practice, qualifying, race)
type EventSession struct {
	Name    string  `json:"name"`
	Entries []Entry `json:"entries,omitempty"`
}

// Event is a single round of a championship year
type Event struct {
	Name     string         `json:"name"`
	Sessions []EventSession `json:"sessions,omitempty"`
}

// ChampionshipYear is one season of a championship, with every event
// and the drivers entered in each session
type ChampionshipYear struct {
	Championship string  `json:"championship"`
	Year         string  `json:"year"`
	Events       []Event `json:"events"`
}

// DriverIDs returns the distinct driver identifiers referenced anywhere
// in the championship year, in first-seen order
func (c *ChampionshipYear) DriverIDs() []DriverID {
	seen := make(map[DriverID]struct{})
	var ids []DriverID
	for _, event := range c.Events {
		for _, session := range event.Sessions {
			for _, entry := range session.Entries {
				for _, id := range entry.Drivers {
					if id == "" {
						continue
					}
					if _, ok := seen[id]; ok {
						continue
					}
					seen[id] = struct{}{}
					ids = append(ids, id)
				}
			}
		}
	}
	return ids
}
