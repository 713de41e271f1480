package memory

import (
	"context"
	"sort"

	"github.com/ajs-hub/placement-api/internal/models"
	"github.com/ajs-hub/placement-api/internal/repository"
)

// AnnouncementRepository keeps staff announcements.
type AnnouncementRepository struct {
	s *Store
}

// List returns announcements, newest first.
func (r *AnnouncementRepository) List(_ context.Context, filter models.AnnouncementFilter) ([]models.Announcement, int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	matched := make([]models.Announcement, 0, len(r.s.announcements))
	for _, a := range r.s.announcements {
		if filter.Priority != "" && a.Priority != filter.Priority {
			continue
		}
		matched = append(matched, a)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Date.Equal(matched[j].Date) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].Date.After(matched[j].Date)
	})
	return page(matched, filter.Page, filter.PageSize), len(matched), nil
}

// FindByID fetches an announcement.
func (r *AnnouncementRepository) FindByID(_ context.Context, id string) (*models.Announcement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.announcements[id]
	if !ok {
		return nil, errNotFound
	}
	return &a, nil
}

// Create inserts an announcement.
func (r *AnnouncementRepository) Create(_ context.Context, a *models.Announcement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a.ID = newID(a.ID)
	now := r.s.stamp()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now
	r.s.announcements[a.ID] = *a
	return nil
}

// Update replaces an announcement.
func (r *AnnouncementRepository) Update(_ context.Context, a *models.Announcement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.announcements[a.ID]
	if !ok {
		return errNotFound
	}
	a.CreatedAt, a.CreatedBy = current.CreatedAt, current.CreatedBy
	a.UpdatedAt = r.s.stamp()
	r.s.announcements[a.ID] = *a
	return nil
}

// Delete removes an announcement.
func (r *AnnouncementRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.announcements[id]; !ok {
		return errNotFound
	}
	delete(r.s.announcements, id)
	return nil
}

// EventRepository keeps department events with their registrations inline.
type EventRepository struct {
	s *Store
}

func cloneEvent(event models.DepartmentEvent, withRegistrations bool) models.DepartmentEvent {
	if event.MaxParticipants != nil {
		limit := *event.MaxParticipants
		event.MaxParticipants = &limit
	}
	if !withRegistrations {
		event.Registrations = nil
		return event
	}
	event.Registrations = append([]models.EventRegistration(nil), event.Registrations...)
	return event
}

// List returns events in date order without registrations.
func (r *EventRepository) List(_ context.Context, filter models.EventFilter) ([]models.DepartmentEvent, int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	matched := make([]models.DepartmentEvent, 0, len(r.s.events))
	for _, event := range r.s.events {
		if filter.Status != "" && event.Status != filter.Status {
			continue
		}
		if filter.Type != "" && event.Type != filter.Type {
			continue
		}
		if filter.ActiveOnly && !event.Active {
			continue
		}
		matched = append(matched, cloneEvent(event, false))
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Date.Equal(matched[j].Date) {
			if matched[i].Time == matched[j].Time {
				return matched[i].ID < matched[j].ID
			}
			return matched[i].Time < matched[j].Time
		}
		return matched[i].Date.Before(matched[j].Date)
	})
	return page(matched, filter.Page, filter.PageSize), len(matched), nil
}

// FindByID fetches an event with its registrations.
func (r *EventRepository) FindByID(_ context.Context, id string) (*models.DepartmentEvent, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	event, ok := r.s.events[id]
	if !ok {
		return nil, errNotFound
	}
	event = cloneEvent(event, true)
	return &event, nil
}

// Create inserts an event together with any registrations it carries.
func (r *EventRepository) Create(_ context.Context, event *models.DepartmentEvent) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	event.ID = newID(event.ID)
	now := r.s.stamp()
	if event.CreatedAt.IsZero() {
		event.CreatedAt = now
	}
	event.UpdatedAt = now
	seen := make(map[string]bool, len(event.Registrations))
	for i := range event.Registrations {
		reg := &event.Registrations[i]
		if seen[reg.StudentID] {
			return repository.ErrDuplicateKey
		}
		seen[reg.StudentID] = true
		reg.EventID = event.ID
		if reg.Status == "" {
			reg.Status = models.RegistrationRegistered
		}
		if reg.RegisteredAt.IsZero() {
			reg.RegisteredAt = now
		}
	}
	event.Registered = len(event.Registrations)
	r.s.events[event.ID] = cloneEvent(*event, true)
	return nil
}

// Update replaces an event's details and keeps its registrations.
func (r *EventRepository) Update(_ context.Context, event *models.DepartmentEvent) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.events[event.ID]
	if !ok {
		return errNotFound
	}
	event.CreatedAt = current.CreatedAt
	event.UpdatedAt = r.s.stamp()
	event.Registered = current.Registered
	event.Registrations = current.Registrations
	r.s.events[event.ID] = cloneEvent(*event, true)
	return nil
}

// Delete removes an event and its registrations.
func (r *EventRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.events[id]; !ok {
		return errNotFound
	}
	delete(r.s.events, id)
	return nil
}

// Register adds a student to an event unless it is full or they are already on it.
func (r *EventRepository) Register(_ context.Context, reg *models.EventRegistration) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	event, ok := r.s.events[reg.EventID]
	if !ok {
		return errNotFound
	}
	for _, existing := range event.Registrations {
		if existing.StudentID == reg.StudentID {
			return repository.ErrDuplicateKey
		}
	}
	if event.Full() {
		return repository.ErrCapacityReached
	}
	if reg.Status == "" {
		reg.Status = models.RegistrationRegistered
	}
	if reg.RegisteredAt.IsZero() {
		reg.RegisteredAt = r.s.stamp()
	}
	event.Registrations = append(cloneEvent(event, true).Registrations, *reg)
	event.Registered = len(event.Registrations)
	r.s.events[event.ID] = event
	return nil
}

// UpdateRegistration records attendance for a registered student.
func (r *EventRepository) UpdateRegistration(_ context.Context, eventID, studentID string, status models.RegistrationStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	event, ok := r.s.events[eventID]
	if !ok {
		return errNotFound
	}
	event = cloneEvent(event, true)
	for i := range event.Registrations {
		if event.Registrations[i].StudentID == studentID {
			event.Registrations[i].Status = status
			r.s.events[eventID] = event
			return nil
		}
	}
	return errNotFound
}

// MeetingRepository keeps scheduled meetings.
type MeetingRepository struct {
	s *Store
}

// List returns meetings in date order.
func (r *MeetingRepository) List(_ context.Context) ([]models.Meeting, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	meetings := make([]models.Meeting, 0, len(r.s.meetings))
	for _, m := range r.s.meetings {
		meetings = append(meetings, m)
	}
	sort.SliceStable(meetings, func(i, j int) bool {
		if meetings[i].Date.Equal(meetings[j].Date) {
			return meetings[i].ID < meetings[j].ID
		}
		return meetings[i].Date.Before(meetings[j].Date)
	})
	return meetings, nil
}

// Create inserts a meeting.
func (r *MeetingRepository) Create(_ context.Context, m *models.Meeting) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m.ID = newID(m.ID)
	if m.CreatedAt.IsZero() {
		m.CreatedAt = r.s.stamp()
	}
	r.s.meetings[m.ID] = *m
	return nil
}

// Delete removes a meeting.
func (r *MeetingRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.meetings[id]; !ok {
		return errNotFound
	}
	delete(r.s.meetings, id)
	return nil
}

// CourseRepository keeps courses with enrollments inline.
type CourseRepository struct {
	s *Store
}

func cloneCourse(course models.Course, withEnrollments bool) models.Course {
	course.SkillsCovered = cloneStrings(course.SkillsCovered)
	course.EnrolledCount = len(course.Enrolled)
	if !withEnrollments {
		course.Enrolled = nil
		return course
	}
	course.Enrolled = append([]models.CourseEnrollment(nil), course.Enrolled...)
	return course
}

// List returns courses by name without enrollments.
func (r *CourseRepository) List(_ context.Context, filter models.CourseFilter) ([]models.Course, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	courses := make([]models.Course, 0, len(r.s.courses))
	for _, c := range r.s.courses {
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		courses = append(courses, cloneCourse(c, false))
	}
	sort.SliceStable(courses, func(i, j int) bool {
		if courses[i].Name == courses[j].Name {
			return courses[i].ID < courses[j].ID
		}
		return courses[i].Name < courses[j].Name
	})
	return courses, nil
}

// FindByID fetches a course with its enrollments.
func (r *CourseRepository) FindByID(_ context.Context, id string) (*models.Course, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.courses[id]
	if !ok {
		return nil, errNotFound
	}
	c = cloneCourse(c, true)
	return &c, nil
}

// Create inserts a course and any enrollments it carries.
func (r *CourseRepository) Create(_ context.Context, c *models.Course) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c.ID = newID(c.ID)
	now := r.s.stamp()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
	if c.SkillsCovered == nil {
		c.SkillsCovered = []string{}
	}
	for i := range c.Enrolled {
		c.Enrolled[i].CourseID = c.ID
		if c.Enrolled[i].UpdatedAt.IsZero() {
			c.Enrolled[i].UpdatedAt = now
		}
	}
	c.EnrolledCount = len(c.Enrolled)
	r.s.courses[c.ID] = cloneCourse(*c, true)
	return nil
}

// Update replaces a course's details and keeps its enrollments.
func (r *CourseRepository) Update(_ context.Context, c *models.Course) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.courses[c.ID]
	if !ok {
		return errNotFound
	}
	c.CreatedAt = current.CreatedAt
	c.UpdatedAt = r.s.stamp()
	c.Enrolled = current.Enrolled
	c.EnrolledCount = len(current.Enrolled)
	r.s.courses[c.ID] = cloneCourse(*c, true)
	return nil
}

// SaveProgress enrolls the student if needed and stores their progress.
func (r *CourseRepository) SaveProgress(_ context.Context, e *models.CourseEnrollment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.courses[e.CourseID]
	if !ok {
		return errNotFound
	}
	c = cloneCourse(c, true)
	e.UpdatedAt = r.s.stamp()
	for i := range c.Enrolled {
		if c.Enrolled[i].StudentID == e.StudentID {
			c.Enrolled[i] = *e
			r.s.courses[c.ID] = c
			return nil
		}
	}
	c.Enrolled = append(c.Enrolled, *e)
	c.EnrolledCount = len(c.Enrolled)
	r.s.courses[c.ID] = c
	return nil
}
