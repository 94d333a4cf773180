package client

import (
	"context"
)

// Notifier receives the outcome of a form submission. Frontends plug in a
// toast implementation; CLIs can print to the terminal.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// MeetingForm drives the create/update meeting flow: prefill, field
// validation, submit, notify, navigate.
type MeetingForm struct {
	client   *Client
	notifier Notifier
	navigate func(path string)

	// MeetingId empty means create mode.
	MeetingId    string
	Agenda       string
	Attendes     []string
	AttendesLead []string
	Location     string
	Related      string
	DateTime     string
	Notes        string

	// Errors holds the latest field-level validation messages, keyed by
	// field name.
	Errors map[string]string
}

func NewMeetingForm(c *Client, notifier Notifier, navigate func(path string)) *MeetingForm {
	return &MeetingForm{
		client:   c,
		notifier: notifier,
		navigate: navigate,
		Errors:   map[string]string{},
	}
}

// Load prefills the form from an existing meeting, switching it to update
// mode.
func (f *MeetingForm) Load(ctx context.Context, id string) error {
	meeting, err := f.client.ViewMeeting(ctx, id)
	if err != nil {
		return err
	}

	f.MeetingId = meeting.Id
	f.Agenda = meeting.Agenda
	f.Location = meeting.Location
	f.Related = meeting.Related
	f.DateTime = meeting.DateTime
	f.Notes = meeting.Notes

	f.Attendes = make([]string, 0, len(meeting.Attendes))
	for _, a := range meeting.Attendes {
		f.Attendes = append(f.Attendes, a.Id)
	}
	f.AttendesLead = make([]string, 0, len(meeting.AttendesLead))
	for _, l := range meeting.AttendesLead {
		f.AttendesLead = append(f.AttendesLead, l.Id)
	}

	return nil
}

// Options returns the attendee picker data for both selects.
func (f *MeetingForm) Options(ctx context.Context) ([]Contact, []Lead, error) {
	contacts, err := f.client.Contacts(ctx)
	if err != nil {
		return nil, nil, err
	}
	leads, err := f.client.Leads(ctx)
	if err != nil {
		return nil, nil, err
	}
	return contacts, leads, nil
}

// Validate populates Errors and reports whether the form can be submitted.
func (f *MeetingForm) Validate() bool {
	f.Errors = map[string]string{}
	if f.Agenda == "" {
		f.Errors["agenda"] = "Agenda is required"
	}
	if f.Location == "" {
		f.Errors["location"] = "Location is required"
	}
	if f.DateTime == "" {
		f.Errors["dateTime"] = "Date and time are required"
	}
	return len(f.Errors) == 0
}

// Submit validates and posts the form. On success it notifies and navigates
// back to the meeting listing; on failure the form keeps its state so the
// caller can re-render with Errors.
func (f *MeetingForm) Submit(ctx context.Context) (*Meeting, error) {
	if !f.Validate() {
		f.notifier.Error("Please fix the highlighted fields")
		return nil, nil
	}

	input := MeetingInput{
		Agenda:       f.Agenda,
		Attendes:     f.Attendes,
		AttendesLead: f.AttendesLead,
		Location:     f.Location,
		Related:      f.Related,
		DateTime:     f.DateTime,
		Notes:        f.Notes,
	}

	var (
		meeting *Meeting
		err     error
	)
	if f.MeetingId == "" {
		meeting, err = f.client.AddMeeting(ctx, input)
	} else {
		meeting, err = f.client.UpdateMeeting(ctx, f.MeetingId, input)
	}
	if err != nil {
		f.notifier.Error("Failed to save meeting: " + err.Error())
		return nil, err
	}

	if f.MeetingId == "" {
		f.notifier.Success("Meeting added successfully")
	} else {
		f.notifier.Success("Meeting updated successfully")
	}
	if f.navigate != nil {
		f.navigate("/meetings")
	}

	return meeting, nil
}
