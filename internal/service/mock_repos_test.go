package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/barisbulutdemir/raporermak/internal/model"
	pkgerrors "github.com/barisbulutdemir/raporermak/pkg/errors"
)

// ── mock repositories ──

type mockUserRepo struct {
	users map[string]*model.User // key: user_id, plus "name:"+username index
	seq   int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		m.seq++
		user.UserID = fmt.Sprintf("user-%d", m.seq)
	}
	if user.Version == 0 {
		user.Version = 1
	}
	user.CreatedAt = time.Now()
	m.users[user.UserID] = user
	m.users["name:"+user.Username] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	if u, ok := m.users["name:"+username]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) List(_ context.Context, offset, limit int) ([]model.User, int64, error) {
	seen := make(map[string]bool)
	var all []model.User
	for _, u := range m.users {
		if !seen[u.UserID] {
			seen[u.UserID] = true
			all = append(all, *u)
		}
	}
	total := int64(len(all))
	if offset > len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	existing, ok := m.users[user.UserID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if existing.Version != user.Version {
		return pkgerrors.ErrOptimisticLock
	}
	user.Version++
	m.users[user.UserID] = user
	m.users["name:"+user.Username] = user
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id string, _ string) error {
	if u, ok := m.users[id]; ok {
		delete(m.users, "name:"+u.Username)
		delete(m.users, id)
	}
	return nil
}

type mockReportRepo struct {
	reports map[string]*model.ServiceReport
	seq     int
}

func newMockReportRepo() *mockReportRepo {
	return &mockReportRepo{reports: make(map[string]*model.ServiceReport)}
}

func (m *mockReportRepo) Create(_ context.Context, report *model.ServiceReport) error {
	if report.ReportID == "" {
		m.seq++
		report.ReportID = fmt.Sprintf("report-%d", m.seq)
	}
	if report.Version == 0 {
		report.Version = 1
	}
	report.CreatedAt = time.Now()
	report.UpdatedAt = report.CreatedAt
	m.reports[report.ReportID] = report
	return nil
}

func (m *mockReportRepo) GetByID(_ context.Context, id string) (*model.ServiceReport, error) {
	if r, ok := m.reports[id]; ok {
		copied := *r
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockReportRepo) ListByUser(_ context.Context, userID string, offset, limit int) ([]model.ServiceReport, int64, error) {
	var all []model.ServiceReport
	for _, r := range m.reports {
		if r.UserID == userID {
			all = append(all, *r)
		}
	}
	total := int64(len(all))
	if offset > len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *mockReportRepo) Update(_ context.Context, report *model.ServiceReport) error {
	existing, ok := m.reports[report.ReportID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if existing.Version != report.Version {
		return pkgerrors.ErrOptimisticLock
	}
	report.Version++
	report.UpdatedAt = time.Now()
	m.reports[report.ReportID] = report
	return nil
}

func (m *mockReportRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.reports, id)
	return nil
}

type mockHolidayRepo struct {
	holidays map[string]*model.OfficialHoliday
	seq      int
}

func newMockHolidayRepo() *mockHolidayRepo {
	return &mockHolidayRepo{holidays: make(map[string]*model.OfficialHoliday)}
}

func (m *mockHolidayRepo) Create(_ context.Context, holiday *model.OfficialHoliday) error {
	if holiday.HolidayID == "" {
		m.seq++
		holiday.HolidayID = fmt.Sprintf("holiday-%d", m.seq)
	}
	holiday.CreatedAt = time.Now()
	holiday.UpdatedAt = holiday.CreatedAt
	m.holidays[holiday.HolidayID] = holiday
	return nil
}

func (m *mockHolidayRepo) GetByID(_ context.Context, id string) (*model.OfficialHoliday, error) {
	if h, ok := m.holidays[id]; ok {
		return h, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockHolidayRepo) ListRange(_ context.Context, start, end time.Time) ([]model.OfficialHoliday, error) {
	var result []model.OfficialHoliday
	for _, h := range m.holidays {
		if !h.Date.Before(start) && !h.Date.After(end) {
			result = append(result, *h)
		}
	}
	return result, nil
}

func (m *mockHolidayRepo) ListYear(_ context.Context, year int) ([]model.OfficialHoliday, error) {
	var result []model.OfficialHoliday
	for _, h := range m.holidays {
		if h.Date.Year() == year {
			result = append(result, *h)
		}
	}
	return result, nil
}

func (m *mockHolidayRepo) Update(_ context.Context, holiday *model.OfficialHoliday) error {
	if _, ok := m.holidays[holiday.HolidayID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.holidays[holiday.HolidayID] = holiday
	return nil
}

func (m *mockHolidayRepo) Delete(_ context.Context, id string) error {
	delete(m.holidays, id)
	return nil
}

func (m *mockHolidayRepo) Upsert(_ context.Context, holiday *model.OfficialHoliday) error {
	for _, h := range m.holidays {
		if h.Date.Equal(holiday.Date) {
			h.Description = holiday.Description
			h.IsHalfDay = holiday.IsHalfDay
			return nil
		}
	}
	return m.Create(nil, holiday)
}
