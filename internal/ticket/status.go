package ticket

import "strings"

type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusOnHold     Status = "on_hold"
	StatusResolved   Status = "resolved"
	StatusClosed     Status = "closed"
	StatusRejected   Status = "rejected"
)

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Badge is how a status or severity is presented.
type Badge struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

var statuses = []Status{StatusOpen, StatusInProgress, StatusOnHold, StatusResolved, StatusClosed, StatusRejected}

var statusBadges = map[Status]Badge{
	StatusOpen:       {Label: "Open", Color: "#1E88E5"},
	StatusInProgress: {Label: "In Progress", Color: "#FB8C00"},
	StatusOnHold:     {Label: "On Hold", Color: "#8E24AA"},
	StatusResolved:   {Label: "Resolved", Color: "#43A047"},
	StatusClosed:     {Label: "Closed", Color: "#546E7A"},
	StatusRejected:   {Label: "Rejected", Color: "#E53935"},
}

var severityBadges = map[Severity]Badge{
	SeverityLow:      {Label: "Low", Color: "#66BB6A"},
	SeverityMedium:   {Label: "Medium", Color: "#FFCA28"},
	SeverityHigh:     {Label: "High", Color: "#FF7043"},
	SeverityCritical: {Label: "Critical", Color: "#D32F2F"},
}

var unknownBadge = Badge{Label: "Unknown", Color: "#9E9E9E"}

func Statuses() []Status {
	return append([]Status(nil), statuses...)
}

func ParseStatus(raw string) (Status, bool) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	_, ok := statusBadges[s]
	return s, ok
}

func (s Status) Valid() bool {
	_, ok := statusBadges[s]
	return ok
}

func StatusInfo(s Status) Badge {
	if b, ok := statusBadges[s]; ok {
		return b
	}
	return unknownBadge
}

func SeverityInfo(s Severity) Badge {
	if b, ok := severityBadges[s]; ok {
		return b
	}
	return unknownBadge
}

// Summary counts a page of tickets by status.
type Summary struct {
	Total    int            `json:"total"`
	ByStatus map[Status]int `json:"by_status"`
	Other    int            `json:"other"`
}

func Summarize(tickets []Ticket) Summary {
	sum := Summary{ByStatus: make(map[Status]int, len(statuses))}
	for _, s := range statuses {
		sum.ByStatus[s] = 0
	}
	for _, t := range tickets {
		sum.Total++
		if t.Status.Valid() {
			sum.ByStatus[t.Status]++
			continue
		}
		sum.Other++
	}
	return sum
}
