package unitofwork

import (
	"context"

	"crm-meetings-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ContactRepository() contract.ContactRepository
	LeadRepository() contract.LeadRepository
	MeetingRepository() contract.MeetingRepository
	ActivityRepository() contract.ActivityRepository
}
