package client

import "time"

// Wire field names (attendes, attendesLead, createBy) match the server's
// historical API surface.

type Attendee struct {
	Id        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type CreatedBy struct {
	Id        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type Meeting struct {
	Id           string     `json:"id"`
	Agenda       string     `json:"agenda"`
	Attendes     []Attendee `json:"attendes"`
	AttendesLead []Attendee `json:"attendesLead"`
	Location     string     `json:"location"`
	Related      string     `json:"related"`
	DateTime     string     `json:"dateTime"`
	Notes        string     `json:"notes"`
	CreatedBy    *CreatedBy `json:"createBy"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    *time.Time `json:"updatedAt"`
}

type Contact struct {
	Id        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type Lead struct {
	Id        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Status    string `json:"status"`
}

type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Pages int   `json:"pages"`
}

type MeetingList struct {
	Meetings   []Meeting  `json:"meetings"`
	Pagination Pagination `json:"pagination"`
}

// MeetingInput is the request body for both add and update.
type MeetingInput struct {
	Agenda       string   `json:"agenda"`
	Attendes     []string `json:"attendes"`
	AttendesLead []string `json:"attendesLead"`
	Location     string   `json:"location"`
	Related      string   `json:"related"`
	DateTime     string   `json:"dateTime"`
	Notes        string   `json:"notes"`
}

type ListOptions struct {
	Page      int
	Limit     int
	CreatedBy string
	Related   string
	Agenda    string
}

type LoginResult struct {
	AccessToken string `json:"accessToken"`
	User        struct {
		Id        string `json:"id"`
		Email     string `json:"email"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	} `json:"user"`
}
