package service

import (
	"context"
	"encoding/json"
	"time"

	"crm-meetings-be/internal/dto"
	"crm-meetings-be/internal/entity"
	"crm-meetings-be/internal/pkg/logger"
	"crm-meetings-be/internal/pkg/mailer"
	"crm-meetings-be/internal/repository/specification"
	"crm-meetings-be/internal/repository/unitofwork"
	"crm-meetings-be/pkg/events"
	pkgNats "crm-meetings-be/pkg/nats"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

type IMeetingService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateMeetingRequest) (*dto.MeetingResponse, error)
	GetAll(ctx context.Context, query *dto.ListMeetingsQuery) (*dto.ListMeetingsResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.MeetingResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateMeetingRequest) (*dto.MeetingResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	DeleteMany(ctx context.Context, userId uuid.UUID, req *dto.DeleteManyMeetingsRequest) (*dto.DeleteManyMeetingsResponse, error)
}

type meetingService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	emailService     mailer.IEmailService
	natsPub          *pkgNats.Publisher
	logger           logger.ILogger
}

func NewMeetingService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	emailService mailer.IEmailService,
	natsPub *pkgNats.Publisher,
	log logger.ILogger,
) IMeetingService {
	return &meetingService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		emailService:     emailService,
		natsPub:          natsPub,
		logger:           log,
	}
}

// filterValidIds drops every entry that does not parse as a UUID. Both create
// and update run attendee lists through this, so malformed ids degrade to "not
// linked" instead of failing the request.
func filterValidIds(raw []string) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		if id, err := uuid.Parse(r); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

func contactsFromIds(ids []uuid.UUID) []entity.Contact {
	contacts := make([]entity.Contact, len(ids))
	for i, id := range ids {
		contacts[i] = entity.Contact{Id: id}
	}
	return contacts
}

func leadsFromIds(ids []uuid.UUID) []entity.Lead {
	leads := make([]entity.Lead, len(ids))
	for i, id := range ids {
		leads[i] = entity.Lead{Id: id}
	}
	return leads
}

func (s *meetingService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateMeetingRequest) (*dto.MeetingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	meeting := entity.Meeting{
		Id:            uuid.New(),
		Agenda:        req.Agenda,
		Attendees:     contactsFromIds(filterValidIds(req.Attendes)),
		AttendeeLeads: leadsFromIds(filterValidIds(req.AttendesLead)),
		Location:      req.Location,
		Related:       req.Related,
		DateTime:      req.DateTime,
		Notes:         req.Notes,
		CreatedById:   userId,
		CreatedAt:     time.Now(),
	}

	if err := uow.MeetingRepository().Create(ctx, &meeting); err != nil {
		return nil, err
	}

	// Re-read so the response carries expanded attendees and creator.
	expanded, err := uow.MeetingRepository().FindOne(ctx, specification.ByID{ID: meeting.Id})
	if err != nil {
		return nil, err
	}
	if expanded == nil {
		return nil, ErrMeetingNotFound
	}

	s.publishActivity(ctx, "meeting.created", &meeting.Id, userId, map[string]interface{}{
		"agenda":        meeting.Agenda,
		"dateTime":      meeting.DateTime,
		"attendees":     expanded.AttendeeIds(),
		"attendeeLeads": expanded.AttendeeLeadIds(),
	})
	s.publishEvent(ctx, "MEETING_CREATED", expanded)
	go s.sendInvites(expanded)

	return toMeetingResponse(expanded), nil
}

func (s *meetingService) GetAll(ctx context.Context, query *dto.ListMeetingsQuery) (*dto.ListMeetingsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	page := query.Page
	if page < 1 {
		page = defaultPage
	}
	limit := query.Limit
	if limit < 1 {
		limit = defaultLimit
	}

	// Deleted rows are always excluded, callers cannot opt out.
	specs := []specification.Specification{specification.NotDeleted{}}
	if query.CreatedBy != "" {
		if creatorId, err := uuid.Parse(query.CreatedBy); err == nil {
			specs = append(specs, specification.CreatedBy{UserID: creatorId})
		}
	}
	if query.Related != "" {
		specs = append(specs, specification.ByRelated{Related: query.Related})
	}
	if query.Agenda != "" {
		specs = append(specs, specification.AgendaContains{Query: query.Agenda})
	}

	var (
		meetings []*entity.Meeting
		total    int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		found, err := uow.MeetingRepository().FindPage(gctx, page, limit, specs...)
		meetings = found
		return err
	})
	g.Go(func() error {
		count, err := uow.MeetingRepository().Count(gctx, specs...)
		total = count
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	responses := make([]*dto.MeetingResponse, 0, len(meetings))
	for _, meeting := range meetings {
		responses = append(responses, toMeetingResponse(meeting))
	}

	pages := int((total + int64(limit) - 1) / int64(limit))

	return &dto.ListMeetingsResponse{
		Meetings: responses,
		Pagination: dto.PaginationResponse{
			Total: total,
			Page:  page,
			Pages: pages,
		},
	}, nil
}

func (s *meetingService) Show(ctx context.Context, id uuid.UUID) (*dto.MeetingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	meeting, err := uow.MeetingRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.NotDeleted{},
	)
	if err != nil {
		return nil, err
	}
	if meeting == nil {
		return nil, ErrMeetingNotFound
	}

	return toMeetingResponse(meeting), nil
}

func (s *meetingService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateMeetingRequest) (*dto.MeetingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	meeting, err := uow.MeetingRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.NotDeleted{},
	)
	if err != nil {
		return nil, err
	}
	if meeting == nil {
		return nil, ErrMeetingNotFound
	}

	// Full replacement: every field takes the request value, including the
	// zero values for fields the client left out.
	now := time.Now()
	meeting.Agenda = req.Agenda
	meeting.Attendees = contactsFromIds(filterValidIds(req.Attendes))
	meeting.AttendeeLeads = leadsFromIds(filterValidIds(req.AttendesLead))
	meeting.Location = req.Location
	meeting.Related = req.Related
	meeting.DateTime = req.DateTime
	meeting.Notes = req.Notes
	meeting.UpdatedAt = &now

	if err := uow.MeetingRepository().Update(ctx, meeting); err != nil {
		return nil, err
	}

	expanded, err := uow.MeetingRepository().FindOne(ctx, specification.ByID{ID: meeting.Id})
	if err != nil {
		return nil, err
	}
	if expanded == nil {
		return nil, ErrMeetingNotFound
	}

	s.publishActivity(ctx, "meeting.updated", &meeting.Id, userId, map[string]interface{}{
		"agenda":        meeting.Agenda,
		"attendees":     expanded.AttendeeIds(),
		"attendeeLeads": expanded.AttendeeLeadIds(),
	})
	s.publishEvent(ctx, "MEETING_UPDATED", expanded)

	return toMeetingResponse(expanded), nil
}

func (s *meetingService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// SoftDelete only touches active rows, so zero modified means the id is
	// unknown or the meeting was already deleted.
	modified, err := uow.MeetingRepository().SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if modified == 0 {
		return ErrMeetingNotFound
	}

	s.publishActivity(ctx, "meeting.deleted", &id, userId, nil)
	s.publishEvent(ctx, "MEETING_DELETED", &entity.Meeting{Id: id})

	return nil
}

func (s *meetingService) DeleteMany(ctx context.Context, userId uuid.UUID, req *dto.DeleteManyMeetingsRequest) (*dto.DeleteManyMeetingsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	ids := filterValidIds(req.Ids)
	if len(ids) == 0 {
		return &dto.DeleteManyMeetingsResponse{DeletedCount: 0}, nil
	}

	modified, err := uow.MeetingRepository().SoftDeleteByIds(ctx, ids)
	if err != nil {
		return nil, err
	}

	s.publishActivity(ctx, "meeting.bulk_deleted", nil, userId, map[string]interface{}{
		"requested": len(req.Ids),
		"deleted":   modified,
	})

	return &dto.DeleteManyMeetingsResponse{DeletedCount: modified}, nil
}

// publishActivity hands the mutation to the activity trail. A publish failure
// is logged but never fails the request that caused it.
func (s *meetingService) publishActivity(ctx context.Context, action string, meetingId *uuid.UUID, actorId uuid.UUID, details map[string]interface{}) {
	if s.publisherService == nil {
		return
	}

	msg := dto.MeetingActivityMessage{
		Action:    action,
		MeetingId: meetingId,
		ActorId:   actorId,
		Details:   details,
	}
	payload, _ := json.Marshal(msg)

	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.logger.Warn("MeetingService", "Failed to publish activity", map[string]interface{}{
			"action": action,
			"error":  err.Error(),
		})
	}
}

// publishEvent mirrors the mutation onto the external event bus when NATS is
// configured.
func (s *meetingService) publishEvent(ctx context.Context, eventType string, meeting *entity.Meeting) {
	if s.natsPub == nil {
		return
	}

	event := events.BaseEvent{
		Type: eventType,
		Data: map[string]interface{}{
			"meeting_id": meeting.Id.String(),
			"agenda":     meeting.Agenda,
			"date_time":  meeting.DateTime,
		},
		OccurredAt: time.Now(),
	}

	if err := s.natsPub.Publish(ctx, event); err != nil {
		s.logger.Warn("MeetingService", "Failed to publish NATS event", map[string]interface{}{
			"event": eventType,
			"error": err.Error(),
		})
	}
}

// sendInvites emails every attendee contact that has an address. Best effort,
// runs off the request path.
func (s *meetingService) sendInvites(meeting *entity.Meeting) {
	if s.emailService == nil {
		return
	}

	for _, attendee := range meeting.Attendees {
		if attendee.Email == "" {
			continue
		}
		name := attendee.FirstName
		if attendee.LastName != "" {
			name = name + " " + attendee.LastName
		}
		if err := s.emailService.SendMeetingInvite(attendee.Email, name, meeting.Agenda, meeting.DateTime, meeting.Location); err != nil {
			s.logger.Warn("MeetingService", "Failed to send meeting invite", map[string]interface{}{
				"meeting_id": meeting.Id,
				"email":      attendee.Email,
				"error":      err.Error(),
			})
		}
	}
}

func toMeetingResponse(meeting *entity.Meeting) *dto.MeetingResponse {
	attendees := make([]dto.AttendeeResponse, 0, len(meeting.Attendees))
	for _, a := range meeting.Attendees {
		attendees = append(attendees, dto.AttendeeResponse{
			Id:        a.Id,
			FirstName: a.FirstName,
			LastName:  a.LastName,
			Email:     a.Email,
		})
	}

	leads := make([]dto.AttendeeResponse, 0, len(meeting.AttendeeLeads))
	for _, l := range meeting.AttendeeLeads {
		leads = append(leads, dto.AttendeeResponse{
			Id:        l.Id,
			FirstName: l.FirstName,
			LastName:  l.LastName,
			Email:     l.Email,
		})
	}

	var createdBy *dto.CreatedByResponse
	if meeting.CreatedBy != nil {
		createdBy = &dto.CreatedByResponse{
			Id:        meeting.CreatedBy.Id,
			FirstName: meeting.CreatedBy.FirstName,
			LastName:  meeting.CreatedBy.LastName,
		}
	}

	return &dto.MeetingResponse{
		Id:           meeting.Id,
		Agenda:       meeting.Agenda,
		Attendes:     attendees,
		AttendesLead: leads,
		Location:     meeting.Location,
		Related:      meeting.Related,
		DateTime:     meeting.DateTime,
		Notes:        meeting.Notes,
		CreatedBy:    createdBy,
		CreatedAt:    meeting.CreatedAt,
		UpdatedAt:    meeting.UpdatedAt,
	}
}
