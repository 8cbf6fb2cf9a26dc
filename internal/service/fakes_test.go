package service

import (
	"time"

	"github.com/anchorhq/anchor/internal/model"
	"github.com/anchorhq/anchor/internal/repository"
)

type fakeMilestoneRepo struct {
	milestones []model.Milestone
	failValues map[int]error
}

func (f *fakeMilestoneRepo) Milestones(userID string) ([]model.Milestone, error) {
	return f.milestones, nil
}

func (f *fakeMilestoneRepo) Insert(m *model.Milestone) error {
	if err, ok := f.failValues[m.Value]; ok {
		return err
	}
	for _, existing := range f.milestones {
		if existing.Type == m.Type && existing.Value == m.Value {
			return repository.ErrMilestoneExists
		}
	}
	f.milestones = append(f.milestones, *m)
	return nil
}

type fakeCheckInRepo struct {
	checkins  []model.CheckIn
	upsertErr error
}

func (f *fakeCheckInRepo) Upsert(c *model.CheckIn) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	for i, existing := range f.checkins {
		if existing.UserID == c.UserID && existing.Date == c.Date {
			f.checkins[i] = *c
			return nil
		}
	}
	f.checkins = append(f.checkins, *c)
	return nil
}

func (f *fakeCheckInRepo) ByDay(userID string, day time.Time) (*model.CheckIn, error) {
	key := day.Format(model.DateLayout)
	for _, c := range f.checkins {
		if c.UserID == userID && c.Date == key {
			return &c, nil
		}
	}
	return nil, repository.ErrCheckInNotFound
}

func (f *fakeCheckInRepo) Window(userID string, from, to time.Time) ([]model.CheckIn, error) {
	fromKey := from.Format(model.DateLayout)
	toKey := to.Format(model.DateLayout)
	var out []model.CheckIn
	for _, c := range f.checkins {
		if c.UserID == userID && c.Date >= fromKey && c.Date <= toKey {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCheckInRepo) RecentDates(userID string, limit int) ([]time.Time, error) {
	var out []time.Time
	for i := len(f.checkins) - 1; i >= 0 && len(out) < limit; i-- {
		c := f.checkins[i]
		if c.UserID != userID {
			continue
		}
		t, err := time.Parse(model.DateLayout, c.Date)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeCheckInRepo) Count(userID string) (int, error) {
	n := 0
	for _, c := range f.checkins {
		if c.UserID == userID {
			n++
		}
	}
	return n, nil
}

type fakeProfileRepo struct {
	profile *model.Profile
}

func (f *fakeProfileRepo) ByUserID(userID string) (*model.Profile, error) {
	if f.profile == nil {
		return nil, repository.ErrProfileNotFound
	}
	return f.profile, nil
}

func (f *fakeProfileRepo) Create(profile *model.Profile) error {
	f.profile = profile
	return nil
}

func (f *fakeProfileRepo) UpdateName(userID, name string) error {
	f.profile.Name = name
	return nil
}

func (f *fakeProfileRepo) UpdateRecoveryStartDate(userID string, start *time.Time) error {
	f.profile.RecoveryStartDate = start
	return nil
}

type fakeUserRepo struct {
	user *model.User
}

func (f *fakeUserRepo) Create(user *model.User) error { f.user = user; return nil }

func (f *fakeUserRepo) ByID(id string) (*model.User, error) {
	if f.user == nil {
		return nil, repository.ErrUserNotFound
	}
	return f.user, nil
}

func (f *fakeUserRepo) ByEmail(email string) (*model.User, error) {
	if f.user == nil || f.user.Email != email {
		return nil, repository.ErrUserNotFound
	}
	return f.user, nil
}

func (f *fakeUserRepo) Update(user *model.User) error { f.user = user; return nil }

func (f *fakeUserRepo) Delete(id string) error { f.user = nil; return nil }

func seedCheckIns(repo *fakeCheckInRepo, userID string, today time.Time, days int) {
	for i := days - 1; i >= 0; i-- {
		repo.checkins = append(repo.checkins, model.CheckIn{
			UserID:       userID,
			Date:         today.AddDate(0, 0, -i).Format(model.DateLayout),
			MoodScore:    7,
			EnergyLevel:  3,
			SleepQuality: 4,
		})
	}
}
