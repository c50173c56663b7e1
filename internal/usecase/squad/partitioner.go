package squad

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/samber/lo"

	"squadBot/internal/domain"
)

// Shuffler produces a uniformly random permutation through swap, with the
// same contract as rand.Shuffle.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type globalShuffler struct{}

func (globalShuffler) Shuffle(n int, swap func(i, j int)) {
	rand.Shuffle(n, swap)
}

// NewSeededShuffler returns a deterministic Shuffler. It is not safe for
// concurrent use.
func NewSeededShuffler(seed uint64) Shuffler {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

type Partitioner struct {
	shuffler Shuffler
}

// NewPartitioner uses the goroutine-safe global source when shuffler is nil.
func NewPartitioner(shuffler Shuffler) *Partitioner {
	if shuffler == nil {
		shuffler = globalShuffler{}
	}
	return &Partitioner{shuffler: shuffler}
}

// Teams shuffles a copy of the participants and chunks it by team size. The
// last team holds the remainder. req must come from the parser; a zero
// TeamSize panics.
func (p *Partitioner) Teams(req domain.Request) domain.Roster {
	shuffled := append([]string(nil), req.Participants...)
	p.shuffler.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if len(shuffled) == 0 {
		return domain.Roster{}
	}
	return domain.Roster(lo.Chunk(shuffled, int(req.TeamSize)))
}

func (p *Partitioner) CreateTeams(req domain.Request) string {
	return Render(req.TeamSize, p.Teams(req))
}

// Render formats a roster as a header line followed by one numbered line per
// team.
func Render(size domain.TeamSize, roster domain.Roster) string {
	var b strings.Builder
	fmt.Fprintf(&b, "-- %s --\n", size.Label())
	for i, team := range roster {
		fmt.Fprintf(&b, "%d. %s\n", i+1, strings.Join(team, ", "))
	}
	return b.String()
}
