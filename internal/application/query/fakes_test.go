package query

import (
	"context"
	"fmt"

	"github.com/Bitshifter-9/cp-tracker/internal/domain/problem"
	"github.com/Bitshifter-9/cp-tracker/internal/domain/progress"
	"github.com/Bitshifter-9/cp-tracker/internal/domain/shared"
	"github.com/Bitshifter-9/cp-tracker/internal/domain/team"
)

// In-memory repositories for query handler tests.

type fakeTeamRepo struct {
	teams map[shared.TeamID]*team.Team
}

func newFakeTeamRepo(teams ...*team.Team) *fakeTeamRepo {
	r := &fakeTeamRepo{teams: make(map[shared.TeamID]*team.Team)}
	for _, t := range teams {
		r.teams[t.ID] = t
	}
	return r
}

func (r *fakeTeamRepo) Create(_ context.Context, t *team.Team) error {
	r.teams[t.ID] = t
	return nil
}

func (r *fakeTeamRepo) GetByID(_ context.Context, id shared.TeamID) (*team.Team, error) {
	t, ok := r.teams[id]
	if !ok {
		return nil, shared.ErrTeamNotFound
	}
	return t, nil
}

func (r *fakeTeamRepo) Save(_ context.Context, t *team.Team) error {
	r.teams[t.ID] = t
	return nil
}

func (r *fakeTeamRepo) RenameMember(_ context.Context, id shared.TeamID, from, to shared.Username) error {
	t, ok := r.teams[id]
	if !ok {
		return shared.ErrTeamNotFound
	}
	return t.RenameMember(from, to)
}

type fakeProblemRepo struct {
	problems map[string]*problem.Problem
}

func newFakeProblemRepo(problems ...*problem.Problem) *fakeProblemRepo {
	r := &fakeProblemRepo{problems: make(map[string]*problem.Problem)}
	for _, p := range problems {
		r.problems[p.ID] = p
	}
	return r
}

func (r *fakeProblemRepo) Create(_ context.Context, p *problem.Problem) error {
	r.problems[p.ID] = p
	return nil
}

func (r *fakeProblemRepo) CreateBatch(ctx context.Context, problems []*problem.Problem) error {
	for _, p := range problems {
		if err := r.Create(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeProblemRepo) GetByID(_ context.Context, teamID shared.TeamID, id string) (*problem.Problem, error) {
	p, ok := r.problems[id]
	if !ok || p.TeamID != teamID {
		return nil, shared.ErrProblemNotFound
	}
	return p, nil
}

func (r *fakeProblemRepo) ListBySheet(_ context.Context, teamID shared.TeamID, sheet problem.SheetID, _ string) ([]*problem.Problem, error) {
	var out []*problem.Problem
	for _, p := range r.problems {
		if p.TeamID == teamID && p.Sheet == sheet {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProblemRepo) ListGroup(_ context.Context, key problem.GroupKey) ([]*problem.Problem, error) {
	var out []*problem.Problem
	for _, p := range r.problems {
		if p.Group() == key {
			out = append(out, p)
		}
	}
	problem.SortGroup(out)
	return out, nil
}

func (r *fakeProblemRepo) MaxOrder(_ context.Context, key problem.GroupKey) (int, error) {
	max := 0
	for _, p := range r.problems {
		if p.Group() == key && p.Order > max {
			max = p.Order
		}
	}
	return max, nil
}

func (r *fakeProblemRepo) SwapOrders(_ context.Context, a, b *problem.Problem) error {
	r.problems[a.ID] = a
	r.problems[b.ID] = b
	return nil
}

func (r *fakeProblemRepo) Search(_ context.Context, teamID shared.TeamID, _ string, limit int) ([]*problem.Problem, error) {
	var out []*problem.Problem
	for _, p := range r.problems {
		if p.TeamID == teamID && len(out) < limit {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProblemRepo) GetByIDs(_ context.Context, teamID shared.TeamID, ids []string) (map[string]*problem.Problem, error) {
	out := make(map[string]*problem.Problem)
	for _, id := range ids {
		if p, ok := r.problems[id]; ok && p.TeamID == teamID {
			out[id] = p
		}
	}
	return out, nil
}

func (r *fakeProblemRepo) DeleteBySheet(_ context.Context, teamID shared.TeamID, sheet problem.SheetID) error {
	for id, p := range r.problems {
		if p.TeamID == teamID && p.Sheet == sheet {
			delete(r.problems, id)
		}
	}
	return nil
}

type fakeProgressRepo struct {
	records map[string]*progress.Record
}

func newFakeProgressRepo(records ...*progress.Record) *fakeProgressRepo {
	r := &fakeProgressRepo{records: make(map[string]*progress.Record)}
	for _, rec := range records {
		r.records[progressKey(rec.TeamID, rec.Username, rec.ProblemID)] = rec
	}
	return r
}

func progressKey(teamID shared.TeamID, username shared.Username, problemID string) string {
	return fmt.Sprintf("%s/%s/%s", teamID, username, problemID)
}

func (r *fakeProgressRepo) Save(_ context.Context, rec *progress.Record) error {
	r.records[progressKey(rec.TeamID, rec.Username, rec.ProblemID)] = rec
	return nil
}

func (r *fakeProgressRepo) Get(_ context.Context, teamID shared.TeamID, username shared.Username, problemID string) (*progress.Record, error) {
	rec, ok := r.records[progressKey(teamID, username, problemID)]
	if !ok {
		return nil, shared.ErrProgressNotFound
	}
	return rec, nil
}

func (r *fakeProgressRepo) ListByTeam(_ context.Context, teamID shared.TeamID) ([]*progress.Record, error) {
	var out []*progress.Record
	for _, rec := range r.records {
		if rec.TeamID == teamID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeProgressRepo) ListByUser(_ context.Context, teamID shared.TeamID, username shared.Username) ([]*progress.Record, error) {
	var out []*progress.Record
	for _, rec := range r.records {
		if rec.TeamID == teamID && rec.Username == username {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeProgressRepo) ListSolvedByUser(ctx context.Context, teamID shared.TeamID, username shared.Username) ([]*progress.Record, error) {
	all, _ := r.ListByUser(ctx, teamID, username)
	var out []*progress.Record
	for _, rec := range all {
		if rec.IsSolved() {
			out = append(out, rec)
		}
	}
	return out, nil
}
