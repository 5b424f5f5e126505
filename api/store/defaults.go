/* defaults.go
 * Contains the default group stage tables stored when an edition has no standings yet
 */

package store

import "worldcup-sim/api/shared"

func entry(id, name, flag string, stars, points, goalsFor, goalsAgainst, position int) shared.StandingEntry {
	return shared.StandingEntry{
		Team:          shared.Team{ID: id, Name: name, FlagCode: flag, Stars: stars},
		Points:        points,
		GoalsFor:      goalsFor,
		GoalsAgainst:  goalsAgainst,
		GroupPosition: position,
	}
}

// DefaultGroupStandings returns a completed 12 group stage
func DefaultGroupStandings() []shared.GroupStanding {
	return []shared.GroupStanding{
		{Group: "A", Entries: []shared.StandingEntry{
			entry("MEX", "Mexico", "mx", 4, 7, 5, 2, 1),
			entry("KOR", "South Korea", "kr", 3, 5, 4, 3, 2),
			entry("RSA", "South Africa", "za", 2, 4, 3, 4, 3),
			entry("DEN", "Denmark", "dk", 3, 1, 2, 5, 4),
		}},
		{Group: "B", Entries: []shared.StandingEntry{
			entry("CAN", "Canada", "ca", 3, 6, 4, 3, 1),
			entry("SUI", "Switzerland", "ch", 3, 5, 4, 3, 2),
			entry("QAT", "Qatar", "qa", 2, 4, 3, 4, 3),
			entry("ITA", "Italy", "it", 4, 1, 2, 3, 4),
		}},
		{Group: "C", Entries: []shared.StandingEntry{
			entry("BRA", "Brazil", "br", 5, 9, 8, 1, 1),
			entry("MAR", "Morocco", "ma", 4, 6, 5, 3, 2),
			entry("SCO", "Scotland", "gb-sct", 2, 3, 2, 5, 3),
			entry("HAI", "Haiti", "ht", 1, 0, 1, 7, 4),
		}},
		{Group: "D", Entries: []shared.StandingEntry{
			entry("USA", "United States", "us", 4, 7, 6, 3, 1),
			entry("PAR", "Paraguay", "py", 3, 4, 3, 3, 2),
			entry("AUS", "Australia", "au", 3, 4, 4, 4, 3),
			entry("TUR", "Turkey", "tr", 3, 1, 2, 5, 4),
		}},
		{Group: "E", Entries: []shared.StandingEntry{
			entry("GER", "Germany", "de", 5, 9, 9, 2, 1),
			entry("ECU", "Ecuador", "ec", 3, 4, 3, 4, 2),
			entry("CIV", "Ivory Coast", "ci", 3, 4, 4, 5, 3),
			entry("CUW", "Curacao", "cw", 1, 0, 1, 6, 4),
		}},
		{Group: "F", Entries: []shared.StandingEntry{
			entry("NED", "Netherlands", "nl", 4, 7, 6, 2, 1),
			entry("JPN", "Japan", "jp", 4, 7, 5, 3, 2),
			entry("SWE", "Sweden", "se", 3, 3, 3, 4, 3),
			entry("TUN", "Tunisia", "tn", 2, 0, 1, 6, 4),
		}},
		{Group: "G", Entries: []shared.StandingEntry{
			entry("BEL", "Belgium", "be", 4, 7, 5, 3, 1),
			entry("EGY", "Egypt", "eg", 3, 4, 4, 4, 2),
			entry("IRN", "Iran", "ir", 3, 4, 3, 3, 3),
			entry("NZL", "New Zealand", "nz", 1, 1, 2, 4, 4),
		}},
		{Group: "H", Entries: []shared.StandingEntry{
			entry("ESP", "Spain", "es", 5, 9, 7, 0, 1),
			entry("URU", "Uruguay", "uy", 4, 6, 4, 3, 2),
			entry("KSA", "Saudi Arabia", "sa", 2, 1, 2, 5, 3),
			entry("CPV", "Cape Verde", "cv", 1, 1, 1, 6, 4),
		}},
		{Group: "I", Entries: []shared.StandingEntry{
			entry("FRA", "France", "fr", 5, 7, 6, 2, 1),
			entry("NOR", "Norway", "no", 4, 6, 6, 4, 2),
			entry("SEN", "Senegal", "sn", 3, 4, 3, 4, 3),
			entry("IRQ", "Iraq", "iq", 2, 0, 1, 6, 4),
		}},
		{Group: "J", Entries: []shared.StandingEntry{
			entry("ARG", "Argentina", "ar", 5, 9, 7, 1, 1),
			entry("AUT", "Austria", "at", 3, 4, 3, 4, 2),
			entry("ALG", "Algeria", "dz", 3, 3, 3, 4, 3),
			entry("JOR", "Jordan", "jo", 2, 1, 2, 6, 4),
		}},
		{Group: "K", Entries: []shared.StandingEntry{
			entry("POR", "Portugal", "pt", 5, 7, 6, 3, 1),
			entry("COL", "Colombia", "co", 4, 7, 5, 3, 2),
			entry("UZB", "Uzbekistan", "uz", 2, 1, 2, 5, 3),
			entry("COD", "DR Congo", "cd", 2, 1, 2, 4, 4),
		}},
		{Group: "L", Entries: []shared.StandingEntry{
			entry("ENG", "England", "gb-eng", 5, 9, 6, 0, 1),
			entry("CRO", "Croatia", "hr", 4, 6, 5, 3, 2),
			entry("GHA", "Ghana", "gh", 3, 3, 3, 5, 3),
			entry("PAN", "Panama", "pa", 2, 0, 1, 7, 4),
		}},
	}
}
