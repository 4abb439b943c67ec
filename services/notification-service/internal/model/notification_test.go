package model

import (
	"errors"
	"testing"
)

func TestParseNotificationQuery(t *testing.T) {
	tests := []struct {
		name     string
		search   string
		category string
		typ      string
		tab      string
		want     NotificationQuery
		wantErr  error
	}{
		{name: "defaults", want: NotificationQuery{Tab: TabAll}},
		{name: "all filters", category: "all", typ: "all", tab: "all", want: NotificationQuery{Tab: TabAll}},
		{
			name:     "explicit values",
			search:   "Room",
			category: "room",
			typ:      "urgent",
			tab:      "unread",
			want:     NotificationQuery{SearchTerm: "Room", Category: CategoryRoom, Type: TypeUrgent, Tab: TabUnread},
		},
		{name: "bad category", category: "spa", wantErr: ErrInvalidCategory},
		{name: "bad type", typ: "critical", wantErr: ErrInvalidType},
		{name: "bad tab", tab: "starred", wantErr: ErrInvalidTab},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNotificationQuery(tt.search, tt.category, tt.typ, tt.tab)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNotificationQueryMatches(t *testing.T) {
	n := Notification{
		ID:         1,
		Title:      "Room Cleaning Required",
		Message:    "Housekeeping has been notified.",
		Type:       TypeUrgent,
		Category:   CategoryRoom,
		Priority:   PriorityHigh,
		Actionable: true,
	}

	tests := []struct {
		name  string
		query NotificationQuery
		want  bool
	}{
		{name: "empty query", query: NotificationQuery{}, want: true},
		{name: "title case-insensitive", query: NotificationQuery{SearchTerm: "cLEANING"}, want: true},
		{name: "message match", query: NotificationQuery{SearchTerm: "housekeeping"}, want: true},
		{name: "no text match", query: NotificationQuery{SearchTerm: "payment"}, want: false},
		{name: "category mismatch", query: NotificationQuery{Category: CategoryStaff}, want: false},
		{name: "type mismatch", query: NotificationQuery{Type: TypeInfo}, want: false},
		{name: "unread tab", query: NotificationQuery{Tab: TabUnread}, want: true},
		{name: "archived tab", query: NotificationQuery{Tab: TabArchived}, want: false},
		{name: "actionable tab", query: NotificationQuery{Tab: TabActionable}, want: true},
		{
			name:  "conjunction fails on one predicate",
			query: NotificationQuery{SearchTerm: "room", Category: CategoryRoom, Type: TypeWarning},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.query.Matches(n); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseEnums(t *testing.T) {
	for _, typ := range AllNotificationTypes {
		if got, err := ParseNotificationType(string(typ)); err != nil || got != typ {
			t.Errorf("ParseNotificationType(%q) = %q, %v", typ, got, err)
		}
	}
	for _, c := range AllCategories {
		if got, err := ParseCategory(string(c)); err != nil || got != c {
			t.Errorf("ParseCategory(%q) = %q, %v", c, got, err)
		}
	}
	for _, p := range AllPriorities {
		if got, err := ParsePriority(string(p)); err != nil || got != p {
			t.Errorf("ParsePriority(%q) = %q, %v", p, got, err)
		}
	}
	if _, err := ParsePriority("urgent"); !errors.Is(err, ErrInvalidPriority) {
		t.Errorf("expected ErrInvalidPriority, got %v", err)
	}
}

func TestPresentationCoversEveryVariant(t *testing.T) {
	for _, typ := range AllNotificationTypes {
		name, color := typ.Icon()
		if name == "" || color == "" {
			t.Errorf("type %q has no icon", typ)
		}
		if typ.BadgeVariant() == "" {
			t.Errorf("type %q has no badge variant", typ)
		}
	}
	for _, p := range AllPriorities {
		if p.Color() == "" {
			t.Errorf("priority %q has no color", p)
		}
	}
	for _, c := range AllCategories {
		if c.Label() == "" {
			t.Errorf("category %q has no label", c)
		}
	}
	for _, tab := range AllTabs {
		tab.Matches(Notification{})
	}
}

func TestBadgeVariants(t *testing.T) {
	if got := TypeUrgent.BadgeVariant(); got != BadgeDestructive {
		t.Errorf("urgent badge = %q", got)
	}
	if got := TypeInfo.BadgeVariant(); got != BadgeOutline {
		t.Errorf("info badge = %q", got)
	}
}

func TestUnknownVariantPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown type")
		}
	}()
	NotificationType("critical").BadgeVariant()
}

func TestHeaderBadgeVariant(t *testing.T) {
	if got := HeaderBadgeVariant(0, 0); got != "" {
		t.Errorf("expected hidden badge, got %q", got)
	}
	if got := HeaderBadgeVariant(3, 0); got != BadgeDefault {
		t.Errorf("expected default badge, got %q", got)
	}
	if got := HeaderBadgeVariant(3, 1); got != BadgeDestructive {
		t.Errorf("expected destructive badge, got %q", got)
	}
}
