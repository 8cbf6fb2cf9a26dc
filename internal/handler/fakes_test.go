package handler

import (
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/anchorhq/anchor/internal/ctxkeys"
	"github.com/anchorhq/anchor/internal/model"
	"github.com/anchorhq/anchor/internal/repository"
)

// authedRequest builds a request carrying a signed-in user, the way the
// auth middleware does before a handler runs.
func authedRequest(method, target string) *http.Request {
	r := httptest.NewRequest(method, target, nil)
	user := &model.User{ID: "u1", Email: "ada@example.com"}
	return r.WithContext(ctxkeys.WithUser(r.Context(), user))
}

type fakeCheckInRepo struct {
	checkins []model.CheckIn
	dates    []time.Time
}

func (f *fakeCheckInRepo) Upsert(checkin *model.CheckIn) error {
	f.checkins = append(f.checkins, *checkin)
	return nil
}

func (f *fakeCheckInRepo) ByDay(userID string, day time.Time) (*model.CheckIn, error) {
	key := day.Format(model.DateLayout)
	for i := range f.checkins {
		if f.checkins[i].Date == key {
			return &f.checkins[i], nil
		}
	}
	return nil, repository.ErrCheckInNotFound
}

func (f *fakeCheckInRepo) Window(userID string, from, to time.Time) ([]model.CheckIn, error) {
	return f.checkins, nil
}

func (f *fakeCheckInRepo) RecentDates(userID string, limit int) ([]time.Time, error) {
	if limit < len(f.dates) {
		return f.dates[:limit], nil
	}
	return f.dates, nil
}

func (f *fakeCheckInRepo) Count(userID string) (int, error) {
	return len(f.checkins), nil
}

type fakeProfileRepo struct {
	profile model.Profile
}

func (f *fakeProfileRepo) ByUserID(userID string) (*model.Profile, error) {
	p := f.profile
	p.UserID = userID
	return &p, nil
}

func (f *fakeProfileRepo) Create(profile *model.Profile) error { return nil }

func (f *fakeProfileRepo) UpdateName(userID, name string) error { return nil }

func (f *fakeProfileRepo) UpdateRecoveryStartDate(userID string, start *time.Time) error {
	f.profile.RecoveryStartDate = start
	return nil
}

type fakeGoalRepo struct {
	goals          []*model.Goal
	completedCount int
}

func (f *fakeGoalRepo) Create(goal *model.Goal) error {
	f.goals = append(f.goals, goal)
	return nil
}

func (f *fakeGoalRepo) ByID(userID, goalID string) (*model.Goal, error) {
	for _, g := range f.goals {
		if g.ID == goalID {
			return g, nil
		}
	}
	return nil, repository.ErrGoalNotFound
}

func (f *fakeGoalRepo) Goals(userID, sortBy string) ([]*model.Goal, error) {
	return f.goals, nil
}

func (f *fakeGoalRepo) CountCompleted(userID string) (int, error) {
	return f.completedCount, nil
}

func (f *fakeGoalRepo) Update(goal *model.Goal) error { return nil }

func (f *fakeGoalRepo) Delete(userID, goalID string) error { return nil }
