package problem

import (
	"time"

	"github.com/Bitshifter-9/cp-tracker/internal/domain/shared"
)

// seedEntry is one starter problem for a fixed sheet.
type seedEntry struct {
	name   string
	link   string
	rating shared.Rating
	order  int
}

// Starter catalogs for the three fixed sheets. Every new team gets a
// copy so members can start marking progress immediately.
var (
	tleSeed = []seedEntry{
		{"Watermelon", "https://codeforces.com/problemset/problem/4/A", "800", 1},
		{"Way Too Long Words", "https://codeforces.com/problemset/problem/71/A", "800", 2},
		{"Theatre Square", "https://codeforces.com/problemset/problem/1/A", "1000", 1},
		{"Two Teams Composing", "https://codeforces.com/problemset/problem/1335/C", "1200", 1},
		{"Boredom", "https://codeforces.com/problemset/problem/455/A", "1500", 1},
		{"Woodcutters", "https://codeforces.com/problemset/problem/545/C", "1500", 2},
		{"Vasya and Golden Ticket", "https://codeforces.com/problemset/problem/1030/C", "1300", 1},
		{"Love Triangle", "https://codeforces.com/problemset/problem/939/A", "800", 3},
	}

	usacoSeed = []seedEntry{
		{"Fence Painting", "http://usaco.org/index.php?page=viewproblem2&cpid=1107", "Bronze", 1},
		{"Mad Scientist", "http://usaco.org/index.php?page=viewproblem2&cpid=1012", "Bronze", 2},
		{"Icy Perimeter", "http://usaco.org/index.php?page=viewproblem2&cpid=895", "Silver", 1},
		{"Wormhole Sort", "http://usaco.org/index.php?page=viewproblem2&cpid=992", "Silver", 2},
		{"Clock Tree", "http://usaco.org/index.php?page=viewproblem2&cpid=1016", "Gold", 1},
		{"Milk Pumping", "http://usaco.org/index.php?page=viewproblem2&cpid=969", "Gold", 2},
		{"Cave Paintings", "http://usaco.org/index.php?page=viewproblem2&cpid=996", "Platinum", 1},
	}

	csesSeed = []seedEntry{
		{"Weird Algorithm", "https://cses.fi/problemset/task/1068", "Intro", 1},
		{"Missing Number", "https://cses.fi/problemset/task/1083", "Intro", 2},
		{"Repetitions", "https://cses.fi/problemset/task/1069", "Intro", 3},
		{"Distinct Numbers", "https://cses.fi/problemset/task/1621", "Sorting", 1},
		{"Apartments", "https://cses.fi/problemset/task/1084", "Sorting", 2},
		{"Dice Combinations", "https://cses.fi/problemset/task/1633", "DP", 1},
		{"Minimizing Coins", "https://cses.fi/problemset/task/1634", "DP", 2},
		{"Counting Rooms", "https://cses.fi/problemset/task/1192", "Graph", 1},
		{"Labyrinth", "https://cses.fi/problemset/task/1193", "Graph", 2},
	}
)

// SeedCreator is the username recorded on seeded problems.
const SeedCreator shared.Username = "system"

// SeedForTeam builds the starter problems for a freshly created team.
func SeedForTeam(teamID shared.TeamID, now time.Time) []*Problem {
	var out []*Problem
	appendSheet := func(entries []seedEntry, platform Platform, sheet SheetID) {
		for _, e := range entries {
			p, err := New(teamID, e.name, e.link, e.rating, platform, sheet, e.order, SeedCreator, now)
			if err != nil {
				continue
			}
			out = append(out, p)
		}
	}
	appendSheet(tleSeed, PlatformTLE, SheetTLE)
	appendSheet(usacoSeed, PlatformUSACO, SheetUSACO)
	appendSheet(csesSeed, PlatformCSES, SheetCSES)
	return out
}
