package model

import (
	"fmt"
	"strings"
)

// FilterAll is the filter value that disables a category or type constraint
const FilterAll = "all"

// Tab selects one of the mutually exclusive notification views
type Tab string

const (
	TabAll        Tab = "all"
	TabUnread     Tab = "unread"
	TabArchived   Tab = "archived"
	TabActionable Tab = "actionable"
)

// AllTabs lists every tab
var AllTabs = []Tab{TabAll, TabUnread, TabArchived, TabActionable}

// ParseTab converts a string into a Tab. An empty string selects TabAll.
func ParseTab(s string) (Tab, error) {
	if s == "" {
		return TabAll, nil
	}
	t := Tab(s)
	for _, known := range AllTabs {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTab, s)
}

// Matches reports whether n belongs to the tab
func (t Tab) Matches(n Notification) bool {
	switch t {
	case TabAll, "":
		return true
	case TabUnread:
		return !n.Read
	case TabArchived:
		return n.Archived
	case TabActionable:
		return n.Actionable
	}
	panic(fmt.Sprintf("unhandled notification tab %q", string(t)))
}

// NotificationQuery holds the search and filter parameters of a list view.
// A zero Category or Type means "all".
type NotificationQuery struct {
	SearchTerm string
	Category   Category
	Type       NotificationType
	Tab        Tab
}

// ParseNotificationQuery builds a query from raw request values
func ParseNotificationQuery(search, category, notificationType, tab string) (NotificationQuery, error) {
	q := NotificationQuery{SearchTerm: search}

	if category != "" && category != FilterAll {
		c, err := ParseCategory(category)
		if err != nil {
			return NotificationQuery{}, err
		}
		q.Category = c
	}

	if notificationType != "" && notificationType != FilterAll {
		t, err := ParseNotificationType(notificationType)
		if err != nil {
			return NotificationQuery{}, err
		}
		q.Type = t
	}

	parsedTab, err := ParseTab(tab)
	if err != nil {
		return NotificationQuery{}, err
	}
	q.Tab = parsedTab

	return q, nil
}

// Matches reports whether n satisfies every predicate of the query
func (q NotificationQuery) Matches(n Notification) bool {
	if q.SearchTerm != "" {
		term := strings.ToLower(q.SearchTerm)
		if !strings.Contains(strings.ToLower(n.Title), term) &&
			!strings.Contains(strings.ToLower(n.Message), term) {
			return false
		}
	}

	if q.Category != "" && n.Category != q.Category {
		return false
	}

	if q.Type != "" && n.Type != q.Type {
		return false
	}

	return q.Tab.Matches(n)
}
