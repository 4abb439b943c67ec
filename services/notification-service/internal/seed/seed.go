package seed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/yourorg/hotel-dashboard/services/notification-service/internal/model"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Record is one notification as written in a seed file.
// CreatedAt takes an RFC 3339 timestamp; Age is relative to load time.
type Record struct {
	ID         int    `yaml:"id" validate:"required,min=1"`
	Title      string `yaml:"title" validate:"required"`
	Message    string `yaml:"message" validate:"required"`
	CreatedAt  string `yaml:"created_at" validate:"required_without=Age"`
	Age        string `yaml:"age"`
	Type       string `yaml:"type" validate:"required,oneof=urgent warning info success"`
	Category   string `yaml:"category" validate:"required,oneof=room booking maintenance staff system"`
	Priority   string `yaml:"priority" validate:"required,oneof=high medium low"`
	Actionable bool   `yaml:"actionable"`
	Read       bool   `yaml:"read"`
	Archived   bool   `yaml:"archived"`
}

// File is the top-level layout of a seed file
type File struct {
	Notifications []Record `yaml:"notifications" validate:"dive"`
}

// LoadFile reads notifications from a YAML seed file
func LoadFile(path string, now time.Time) ([]model.Notification, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(data, now)
}

// Parse decodes and validates a YAML seed document
func Parse(data []byte, now time.Time) ([]model.Notification, error) {
	var file File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode seed file: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(file); err != nil {
		return nil, fmt.Errorf("invalid seed file: %w", err)
	}

	notifications := make([]model.Notification, 0, len(file.Notifications))
	for _, r := range file.Notifications {
		n, err := r.toNotification(now)
		if err != nil {
			return nil, fmt.Errorf("seed notification %d: %w", r.ID, err)
		}
		notifications = append(notifications, n)
	}

	return notifications, nil
}

func (r Record) toNotification(now time.Time) (model.Notification, error) {
	var createdAt time.Time
	if r.CreatedAt != "" {
		t, err := time.Parse(time.RFC3339, r.CreatedAt)
		if err != nil {
			return model.Notification{}, fmt.Errorf("invalid created_at: %w", err)
		}
		createdAt = t
	} else {
		age, err := time.ParseDuration(r.Age)
		if err != nil {
			return model.Notification{}, fmt.Errorf("invalid age: %w", err)
		}
		createdAt = now.Add(-age)
	}

	typ, err := model.ParseNotificationType(r.Type)
	if err != nil {
		return model.Notification{}, err
	}
	category, err := model.ParseCategory(r.Category)
	if err != nil {
		return model.Notification{}, err
	}
	priority, err := model.ParsePriority(r.Priority)
	if err != nil {
		return model.Notification{}, err
	}

	return model.Notification{
		ID:         r.ID,
		Title:      r.Title,
		Message:    r.Message,
		CreatedAt:  createdAt,
		Type:       typ,
		Category:   category,
		Priority:   priority,
		Actionable: r.Actionable,
		Read:       r.Read,
		Archived:   r.Archived,
	}, nil
}
