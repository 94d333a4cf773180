package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"testing"

	"crm-meetings-be/internal/dto"
	"crm-meetings-be/internal/entity"
	"crm-meetings-be/internal/repository/contract"
	"crm-meetings-be/internal/repository/specification"
	"crm-meetings-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory meeting repository. Specifications are interpreted by type so the
// fake honors the same filters the real implementation would push into SQL.
type fakeMeetingRepo struct {
	meetings map[uuid.UUID]*entity.Meeting
}

func newFakeMeetingRepo() *fakeMeetingRepo {
	return &fakeMeetingRepo{meetings: map[uuid.UUID]*entity.Meeting{}}
}

func (r *fakeMeetingRepo) matches(m *entity.Meeting, specs ...specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if m.Id != s.ID {
				return false
			}
		case specification.NotDeleted:
			if m.Deleted {
				return false
			}
		case specification.CreatedBy:
			if m.CreatedById != s.UserID {
				return false
			}
		case specification.ByRelated:
			if m.Related != s.Related {
				return false
			}
		default:
			panic(fmt.Sprintf("fakeMeetingRepo: unhandled specification %T", spec))
		}
	}
	return true
}

func (r *fakeMeetingRepo) filtered(specs ...specification.Specification) []*entity.Meeting {
	var result []*entity.Meeting
	for _, m := range r.meetings {
		if r.matches(m, specs...) {
			copied := *m
			result = append(result, &copied)
		}
	}
	return result
}

func (r *fakeMeetingRepo) Create(ctx context.Context, meeting *entity.Meeting) error {
	copied := *meeting
	r.meetings[meeting.Id] = &copied
	return nil
}

func (r *fakeMeetingRepo) Update(ctx context.Context, meeting *entity.Meeting) error {
	copied := *meeting
	r.meetings[meeting.Id] = &copied
	return nil
}

func (r *fakeMeetingRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Meeting, error) {
	for _, m := range r.meetings {
		if r.matches(m, specs...) {
			copied := *m
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeMeetingRepo) FindPage(ctx context.Context, page, limit int, specs ...specification.Specification) ([]*entity.Meeting, error) {
	result := r.filtered(specs...)
	sort.Slice(result, func(i, j int) bool {
		return result[i].DateTime > result[j].DateTime
	})

	offset := (page - 1) * limit
	if offset >= len(result) {
		return nil, nil
	}
	end := offset + limit
	if end > len(result) {
		end = len(result)
	}
	return result[offset:end], nil
}

func (r *fakeMeetingRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.filtered(specs...))), nil
}

func (r *fakeMeetingRepo) SoftDelete(ctx context.Context, id uuid.UUID) (int64, error) {
	m, ok := r.meetings[id]
	if !ok || m.Deleted {
		return 0, nil
	}
	m.Deleted = true
	return 1, nil
}

func (r *fakeMeetingRepo) SoftDeleteByIds(ctx context.Context, ids []uuid.UUID) (int64, error) {
	var modified int64
	for _, id := range ids {
		n, _ := r.SoftDelete(ctx, id)
		modified += n
	}
	return modified, nil
}

type fakeUnitOfWork struct {
	meetingRepo *fakeMeetingRepo
	userRepo    contract.UserRepository
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }

func (u *fakeUnitOfWork) UserRepository() contract.UserRepository         { return u.userRepo }
func (u *fakeUnitOfWork) ContactRepository() contract.ContactRepository   { return nil }
func (u *fakeUnitOfWork) LeadRepository() contract.LeadRepository         { return nil }
func (u *fakeUnitOfWork) MeetingRepository() contract.MeetingRepository   { return u.meetingRepo }
func (u *fakeUnitOfWork) ActivityRepository() contract.ActivityRepository { return nil }

type fakeFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return f.uow }

type recordingPublisher struct {
	payloads []dto.MeetingActivityMessage
}

func (p *recordingPublisher) Publish(ctx context.Context, payload []byte) error {
	var msg dto.MeetingActivityMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		return err
	}
	p.payloads = append(p.payloads, msg)
	return nil
}

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

func newTestMeetingService() (IMeetingService, *fakeMeetingRepo, *recordingPublisher) {
	repo := newFakeMeetingRepo()
	pub := &recordingPublisher{}
	svc := NewMeetingService(&fakeFactory{uow: &fakeUnitOfWork{meetingRepo: repo}}, pub, nil, nil, noopLogger{})
	return svc, repo, pub
}

func seedMeeting(repo *fakeMeetingRepo, agenda, dateTime string, creator uuid.UUID, deleted bool) uuid.UUID {
	id := uuid.New()
	repo.meetings[id] = &entity.Meeting{
		Id:          id,
		Agenda:      agenda,
		DateTime:    dateTime,
		CreatedById: creator,
		Deleted:     deleted,
	}
	return id
}

func TestCreateStampsCreatorAndFiltersMalformedIds(t *testing.T) {
	svc, repo, pub := newTestMeetingService()
	userId := uuid.New()
	goodContact := uuid.New()

	res, err := svc.Create(context.Background(), userId, &dto.CreateMeetingRequest{
		Agenda:       "Quarterly review",
		DateTime:     "2026-09-15T10:00:00Z",
		Attendes:     []string{goodContact.String(), "definitely-not-a-uuid", ""},
		AttendesLead: []string{"also-bad"},
	})
	require.NoError(t, err)
	require.NotNil(t, res)

	stored := repo.meetings[res.Id]
	require.NotNil(t, stored)
	assert.Equal(t, userId, stored.CreatedById)
	assert.False(t, stored.Deleted)
	require.Len(t, stored.Attendees, 1)
	assert.Equal(t, goodContact, stored.Attendees[0].Id)
	assert.Empty(t, stored.AttendeeLeads)

	require.Len(t, pub.payloads, 1)
	assert.Equal(t, "meeting.created", pub.payloads[0].Action)
	assert.Equal(t, userId, pub.payloads[0].ActorId)

	// The trail entry records the linked attendees, post filtering.
	assert.Equal(t, []interface{}{goodContact.String()}, pub.payloads[0].Details["attendees"])
	assert.Empty(t, pub.payloads[0].Details["attendeeLeads"])
}

func TestGetAllPagination(t *testing.T) {
	svc, repo, _ := newTestMeetingService()
	creator := uuid.New()
	for i := 0; i < 25; i++ {
		seedMeeting(repo, "sync", fmt.Sprintf("2026-01-%02dT09:00:00Z", i+1), creator, false)
	}

	res, err := svc.GetAll(context.Background(), &dto.ListMeetingsQuery{Page: 3, Limit: 10})
	require.NoError(t, err)

	assert.Equal(t, int64(25), res.Pagination.Total)
	assert.Equal(t, 3, res.Pagination.Page)
	assert.Equal(t, 3, res.Pagination.Pages)
	require.Len(t, res.Meetings, 5)

	// Page 3 holds the oldest five, still ordered newest first.
	assert.Equal(t, "2026-01-05T09:00:00Z", res.Meetings[0].DateTime)
	assert.Equal(t, "2026-01-01T09:00:00Z", res.Meetings[4].DateTime)
}

func TestGetAllDefaultsAndDeletedExclusion(t *testing.T) {
	svc, repo, _ := newTestMeetingService()
	creator := uuid.New()
	seedMeeting(repo, "kept", "2026-02-01T09:00:00Z", creator, false)
	seedMeeting(repo, "gone", "2026-02-02T09:00:00Z", creator, true)

	// Zero page/limit fall back to 1/10.
	res, err := svc.GetAll(context.Background(), &dto.ListMeetingsQuery{})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Pagination.Page)
	assert.Equal(t, int64(1), res.Pagination.Total)
	require.Len(t, res.Meetings, 1)
	assert.Equal(t, "kept", res.Meetings[0].Agenda)
}

func TestGetAllFiltersByCreator(t *testing.T) {
	svc, repo, _ := newTestMeetingService()
	alice := uuid.New()
	bob := uuid.New()
	seedMeeting(repo, "alice sync", "2026-03-01T09:00:00Z", alice, false)
	seedMeeting(repo, "bob sync", "2026-03-02T09:00:00Z", bob, false)

	res, err := svc.GetAll(context.Background(), &dto.ListMeetingsQuery{CreatedBy: alice.String()})
	require.NoError(t, err)

	require.Len(t, res.Meetings, 1)
	assert.Equal(t, "alice sync", res.Meetings[0].Agenda)

	// A malformed creator filter is dropped, not an error.
	res, err = svc.GetAll(context.Background(), &dto.ListMeetingsQuery{CreatedBy: "not-a-uuid"})
	require.NoError(t, err)
	assert.Len(t, res.Meetings, 2)
}

func TestShowNotFoundForDeleted(t *testing.T) {
	svc, repo, _ := newTestMeetingService()
	id := seedMeeting(repo, "gone", "2026-04-01T09:00:00Z", uuid.New(), true)

	_, err := svc.Show(context.Background(), id)
	assert.ErrorIs(t, err, ErrMeetingNotFound)

	_, err = svc.Show(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrMeetingNotFound)
}

func TestUpdateReplacesAttendeeListsFully(t *testing.T) {
	svc, repo, pub := newTestMeetingService()
	userId := uuid.New()
	id := seedMeeting(repo, "old agenda", "2026-05-01T09:00:00Z", userId, false)
	repo.meetings[id].Attendees = []entity.Contact{{Id: uuid.New()}, {Id: uuid.New()}}

	replacement := uuid.New()
	res, err := svc.Update(context.Background(), userId, &dto.UpdateMeetingRequest{
		Id:       id,
		Agenda:   "new agenda",
		DateTime: "2026-05-02T10:00:00Z",
		Attendes: []string{replacement.String(), "junk-id"},
	})
	require.NoError(t, err)

	stored := repo.meetings[id]
	assert.Equal(t, "new agenda", stored.Agenda)
	require.Len(t, stored.Attendees, 1)
	assert.Equal(t, replacement, stored.Attendees[0].Id)
	assert.Empty(t, stored.AttendeeLeads)
	require.NotNil(t, stored.UpdatedAt)
	assert.Equal(t, "new agenda", res.Agenda)

	require.Len(t, pub.payloads, 1)
	assert.Equal(t, "meeting.updated", pub.payloads[0].Action)
	assert.Equal(t, []interface{}{replacement.String()}, pub.payloads[0].Details["attendees"])
}

func TestUpdateNotFound(t *testing.T) {
	svc, repo, _ := newTestMeetingService()
	deletedId := seedMeeting(repo, "gone", "2026-06-01T09:00:00Z", uuid.New(), true)

	_, err := svc.Update(context.Background(), uuid.New(), &dto.UpdateMeetingRequest{Id: uuid.New()})
	assert.ErrorIs(t, err, ErrMeetingNotFound)

	_, err = svc.Update(context.Background(), uuid.New(), &dto.UpdateMeetingRequest{Id: deletedId})
	assert.ErrorIs(t, err, ErrMeetingNotFound)
}

func TestDeleteTwiceReturnsNotFound(t *testing.T) {
	svc, repo, pub := newTestMeetingService()
	userId := uuid.New()
	id := seedMeeting(repo, "one shot", "2026-07-01T09:00:00Z", userId, false)

	require.NoError(t, svc.Delete(context.Background(), userId, id))
	assert.True(t, repo.meetings[id].Deleted)

	err := svc.Delete(context.Background(), userId, id)
	assert.ErrorIs(t, err, ErrMeetingNotFound)

	// Only the successful delete produced an activity entry.
	require.Len(t, pub.payloads, 1)
	assert.Equal(t, "meeting.deleted", pub.payloads[0].Action)
}

func TestDeleteManyCountsOnlyModifiedRows(t *testing.T) {
	svc, repo, _ := newTestMeetingService()
	userId := uuid.New()
	active := seedMeeting(repo, "active", "2026-08-01T09:00:00Z", userId, false)
	alreadyDeleted := seedMeeting(repo, "gone", "2026-08-02T09:00:00Z", userId, true)

	res, err := svc.DeleteMany(context.Background(), userId, &dto.DeleteManyMeetingsRequest{
		Ids: []string{active.String(), alreadyDeleted.String(), uuid.New().String(), "malformed"},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), res.DeletedCount)
	assert.True(t, repo.meetings[active].Deleted)
	assert.True(t, repo.meetings[alreadyDeleted].Deleted)
}

func TestDeleteManyAllMalformedIsZero(t *testing.T) {
	svc, _, _ := newTestMeetingService()

	res, err := svc.DeleteMany(context.Background(), uuid.New(), &dto.DeleteManyMeetingsRequest{
		Ids: []string{"nope", "also-nope"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.DeletedCount)
}
