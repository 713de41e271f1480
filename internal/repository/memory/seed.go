package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/ajs-hub/placement-api/internal/models"
	"github.com/ajs-hub/placement-api/internal/repository"
)

type shortStudent struct {
	id, enrollment, name, email, department, branch string
	cgpa                                            float64
	backlogs                                        int
	blacklisted                                     bool
	enrolled                                        int
}

func fullStudent(id, enrollment, name, email, phone, department, branch string, cgpa, tenth, twelfth, grad, gap float64,
	past, active int, skills []string, resume string, blacklisted bool, enrolled int) models.Student {
	return models.Student{
		ID: id, EnrollmentNumber: enrollment, Name: name, Email: email, Phone: phone,
		Department: department, Branch: branch, CGPA: models.Float64Ptr(cgpa),
		TenthPercent: models.Float64Ptr(tenth), TwelfthPercent: models.Float64Ptr(twelfth),
		GraduationPercent: models.Float64Ptr(grad), GraduationPeriod: "2021-2025",
		EducationGapYears: models.Float64Ptr(gap), PastBacklogs: models.IntPtr(past), Backlogs: models.IntPtr(active),
		Skills: skills, ResumeURL: resume, Blacklisted: blacklisted, EnrolledJobs: enrolled,
	}
}

// DemoStudents returns the roster loaded by Seed.
func DemoStudents() []models.Student {
	students := []models.Student{
		fullStudent("1", "ENG20220045", "Riya Sharma", "riya.sharma@university.edu", "+91-98200-00001", "Computer Science", "CSE",
			8.7, 92, 90, 86, 0, 0, 0, []string{"Python", "Data Analysis", "SQL"}, "https://example.com/resume/riya", false, 2),
		fullStudent("2", "ENG20220046", "Arjun Mehta", "arjun.mehta@university.edu", "+91-98200-00002", "Computer Science", "CSE",
			7.9, 88, 85, 80, 0, 1, 1, []string{"Java", "DSA"}, "https://example.com/resume/arjun", false, 1),
		fullStudent("3", "ENG20220047", "Neha Verma", "neha.verma@university.edu", "+91-98200-00003", "Computer Science", "CSE",
			9.1, 94, 93, 91, 0, 0, 0, []string{"ML", "Python", "Pandas"}, "https://example.com/resume/neha", false, 3),
		fullStudent("4", "ENG20220048", "Karan Gupta", "karan.gupta@university.edu", "+91-98200-00004", "Computer Science", "CSE",
			7.2, 80, 78, 72, 1, 2, 2, []string{"HTML", "CSS"}, "https://example.com/resume/karan", true, 0),
		fullStudent("5", "ENG20220049", "Aisha Khan", "aisha.khan@university.edu", "+91-98200-00005", "Information Technology", "IT",
			8.3, 90, 88, 84, 0, 0, 0, []string{"JavaScript", "React"}, "https://example.com/resume/aisha", false, 1),
	}
	short := []shortStudent{
		{"6", "ENR2024IT002", "Rohan Das", "rohan.das@university.edu", "Information Technology", "IT", 7.6, 1, false, 2},
		{"7", "ENR2024ECE001", "Priya Nair", "priya.nair@university.edu", "Electronics", "ECE", 8.9, 0, false, 2},
		{"8", "ENR2024ECE002", "Vikram Singh", "vikram.singh@university.edu", "Electronics", "ECE", 7.8, 1, false, 1},
		{"9", "ENR2024ME001", "Suresh Rao", "suresh.rao@university.edu", "Mechanical", "ME", 7.1, 2, false, 0},
		{"10", "ENR2024CIV001", "Meera Joshi", "meera.joshi@university.edu", "Civil", "CE", 8.0, 0, false, 1},
		{"11", "ENR2024CSE005", "Dev Patel", "dev.patel@university.edu", "Computer Science", "CSE", 8.5, 0, false, 2},
		{"12", "ENR2024CSE006", "Sanya Kapoor", "sanya.kapoor@university.edu", "Computer Science", "CSE", 9.2, 0, false, 3},
		{"13", "ENR2024CSE007", "Rahul Jain", "rahul.jain@university.edu", "Computer Science", "CSE", 6.9, 3, true, 0},
		{"14", "ENR2024IT003", "Ananya Roy", "ananya.roy@university.edu", "Information Technology", "IT", 8.1, 0, false, 1},
		{"15", "ENR2024ECE003", "Harsh Vardhan", "harsh.vardhan@university.edu", "Electronics", "ECE", 7.4, 1, false, 1},
		{"16", "ENR2024ME002", "Ishita Malhotra", "ishita.malhotra@university.edu", "Mechanical", "ME", 7.7, 1, false, 1},
		{"17", "ENR2024CIV002", "Tushar Kulkarni", "tushar.kulkarni@university.edu", "Civil", "CE", 7.9, 0, false, 1},
		{"18", "ENR2024CSE008", "Sneha Iyer", "sneha.iyer@university.edu", "Computer Science", "CSE", 8.8, 0, false, 2},
		{"19", "ENR2024CSE009", "Manav Kapoor", "manav.kapoor@university.edu", "Computer Science", "CSE", 8.0, 0, false, 2},
		{"20", "ENR2024IT004", "Zoya Sheikh", "zoya.sheikh@university.edu", "Information Technology", "IT", 8.4, 0, false, 1},
	}
	for _, s := range short {
		students = append(students, models.Student{
			ID: s.id, EnrollmentNumber: s.enrollment, Name: s.name, Email: s.email,
			Department: s.department, Branch: s.branch, CGPA: models.Float64Ptr(s.cgpa),
			Backlogs: models.IntPtr(s.backlogs), Blacklisted: s.blacklisted, EnrolledJobs: s.enrolled,
		})
	}
	return students
}

func date(layout string) time.Time {
	t, err := time.Parse("2006-01-02", layout)
	if err != nil {
		panic(err)
	}
	return t
}

func datePtr(layout string) *time.Time {
	t := date(layout)
	return &t
}

// DemoDrives returns the campus drives loaded by Seed.
func DemoDrives() []models.Drive {
	return []models.Drive{
		{
			ID: "d1", Company: "Infosys", Role: "System Engineer", CTCLpa: 5,
			DriveDate: date("2025-12-05"), Deadline: datePtr("2025-11-25"),
			Description: "Hiring for System Engineer role.",
			Criteria: models.DriveCriteria{
				MinGraduation: models.Float64Ptr(60), AllowActiveBacklog: models.BoolPtr(false),
				RequiredSkills: []string{"Java", "DSA"}, Location: models.DriveLocationOnCampus, ResumeRequired: models.BoolPtr(true),
			},
			Status: models.DriveStatusAnnounced,
		},
		{
			ID: "d2", Company: "TCS", Role: "Ninja", CTCLpa: 4.5,
			DriveDate: date("2025-11-28"), Deadline: datePtr("2025-11-18"),
			Description: "TCS Ninja hiring drive.",
			Criteria: models.DriveCriteria{
				MinTenth: models.Float64Ptr(70), MinTwelfth: models.Float64Ptr(70), MinGraduation: models.Float64Ptr(60),
				Location: models.DriveLocationVirtual,
			},
			Status: models.DriveStatusOpen,
		},
		{
			ID: "d3", Company: "Google", Role: "STEP Internship", CTCLpa: 15,
			DriveDate: date("2026-01-15"), Deadline: datePtr("2025-12-20"),
			Description: "Google STEP internship for pre-final year students.",
			Criteria: models.DriveCriteria{
				MinGraduation: models.Float64Ptr(80), RequiredSkills: []string{"Python", "ML"},
				Location: models.DriveLocationVirtual, ResumeRequired: models.BoolPtr(true),
			},
			Status: models.DriveStatusAnnounced,
		},
	}
}

// DemoJobs returns the job postings loaded by Seed.
func DemoJobs() []models.Job {
	return []models.Job{
		{ID: "1", Title: "Software Engineer Intern", Company: "Tech Corp", Type: "Internship", Department: "Computer Science",
			Deadline: datePtr("2025-11-15"), Applicants: 25, Eligibility: []string{"10th Math > 75%", "12th Math > 85%", "12th CS > 80%"}},
		{ID: "2", Title: "Data Analyst", Company: "Data Inc", Type: "Full-time", Department: "Mathematics",
			Deadline: datePtr("2025-11-30"), Applicants: 18, Eligibility: []string{"10th Math > 75%", "12th Math > 85%", "Degree Required"}},
		{ID: "3", Title: "Research Assistant", Company: "Research Lab", Type: "Part-time", Department: "Physics",
			Deadline: datePtr("2025-12-10"), Applicants: 12, Eligibility: []string{"12th Math > 85%"}},
		{ID: "4", Title: "Google SDE", Company: "Google", Type: "Full-time", Department: "Computer Science",
			Deadline: datePtr("2025-12-20"), Applicants: 45, Eligibility: []string{"CGPA > 8.0", "No active backlogs"}},
		{ID: "5", Title: "TCS Ninja", Company: "TCS", Type: "Full-time", Department: "Information Technology",
			Deadline: datePtr("2025-12-15"), Applicants: 80, Eligibility: []string{"CGPA > 7.0"}},
	}
}

// DemoColleges returns the tenant colleges loaded by Seed.
func DemoColleges() []models.College {
	return []models.College{
		{ID: "1", Name: "XYZ Institute of Technology", Code: "XYZ-001", Domain: "xyz.edu.in", Contact: "tpo@xyz.edu.in",
			Plan: models.CollegePlanPremium, Status: models.TenantStatusActive, Departments: 5, Students: 450, Jobs: 12},
		{ID: "2", Name: "ABC College of Engineering", Code: "ABC-002", Domain: "abc.edu.in", Contact: "placement@abc.edu.in",
			Plan: models.CollegePlanStandard, Status: models.TenantStatusInactive, Departments: 3, Students: 280, Jobs: 8},
		{ID: "3", Name: "Global Institute", Code: "GLB-003", Domain: "global.edu.in", Contact: "tp@global.edu.in",
			Plan: models.CollegePlanEnterprise, Status: models.TenantStatusActive, Departments: 6, Students: 620, Jobs: 18},
	}
}

// DemoDepartments returns the departments loaded by Seed.
func DemoDepartments() []models.Department {
	return []models.Department{
		{ID: "1", CollegeID: "1", Name: "Computer Science", HOD: "Dr. Meera Patel", Email: "hod.cse@xyz.edu.in",
			Phone: "+91-9876543210", Students: 120, ActiveJobs: 4, Status: models.TenantStatusActive},
		{ID: "2", CollegeID: "1", Name: "Electronics", HOD: "Dr. Anil Singh", Email: "hod.ece@xyz.edu.in",
			Phone: "+91-9876543211", Students: 80, ActiveJobs: 2, Status: models.TenantStatusActive},
		{ID: "3", CollegeID: "2", Name: "Mechanical", HOD: "Dr. S. Rao", Email: "hod.mech@abc.edu.in",
			Phone: "+91-9876543212", Students: 90, ActiveJobs: 1, Status: models.TenantStatusInactive},
		{ID: "4", CollegeID: "3", Name: "Information Technology", HOD: "Dr. Priya Sharma", Email: "hod.it@global.edu.in",
			Phone: "+91-9876543213", Students: 150, ActiveJobs: 5, Status: models.TenantStatusActive},
		{ID: "5", CollegeID: "2", Name: "Civil Engineering", HOD: "Dr. Rajesh Kumar", Email: "hod.civil@abc.edu.in",
			Phone: "+91-9876543214", Students: 70, ActiveJobs: 2, Status: models.TenantStatusActive},
	}
}

// DemoNotifications returns the notifications loaded by Seed, timed relative to now.
func DemoNotifications(now time.Time) []models.Notification {
	return []models.Notification{
		{ID: "1", Title: "New Job Posted", Message: "Software Engineer Intern position at Tech Corp",
			Type: models.NotificationTypeJob, CreatedAt: now.Add(-time.Hour)},
		{ID: "2", Title: "Meeting Reminder", Message: "Placement Drive Briefing tomorrow at 10:00 AM",
			Type: models.NotificationTypeMeeting, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "3", Title: "New Announcement", Message: "Campus Placement Schedule has been updated",
			Type: models.NotificationTypeAnnouncement, CreatedAt: now.Add(-24 * time.Hour)},
	}
}

// DemoAnnouncements returns the announcements loaded by Seed.
func DemoAnnouncements() []models.Announcement {
	return []models.Announcement{
		{ID: "1", Title: "New Job Postings Available", Content: "Check out the latest job opportunities from top tech companies.",
			Date: date("2025-10-08"), Priority: models.AnnouncementPriorityHigh},
		{ID: "2", Title: "Campus Placement Schedule", Content: "The placement drive schedule for this semester has been released.",
			Date: date("2025-10-05"), Priority: models.AnnouncementPriorityMedium},
	}
}

func registrations(pairs ...string) []models.EventRegistration {
	out := make([]models.EventRegistration, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, models.EventRegistration{StudentID: pairs[i], Status: models.RegistrationStatus(pairs[i+1])})
	}
	return out
}

// DemoEvents returns the department events loaded by Seed.
func DemoEvents() []models.DepartmentEvent {
	return []models.DepartmentEvent{
		{ID: "e1", Title: "AI Workshop 2025", Description: "Hands-on session on practical AI applications.",
			Type: models.EventTypeWorkshop, Date: date("2025-11-10"), Time: "10:00", Location: "Auditorium",
			MaxParticipants: models.IntPtr(150), Status: models.EventStatusUpcoming, Active: true,
			Registrations: registrations("1", "Registered", "3", "Registered")},
		{ID: "e2", Title: "Placement Bootcamp", Description: "Intensive placement readiness program.",
			Type: models.EventTypeTraining, Date: date("2025-10-20"), Time: "09:00", Location: "Lab 1",
			MaxParticipants: models.IntPtr(100), Status: models.EventStatusOngoing, Active: true,
			Registrations: registrations("2", "Attended", "5", "Registered")},
		{ID: "e3", Title: "TechFest 2025", Description: "Annual department tech fest.",
			Type: models.EventTypeHackathon, Date: date("2025-09-15"), Time: "12:00", OnlineLink: "https://meet.example.com/techfest",
			MaxParticipants: models.IntPtr(500), Status: models.EventStatusCompleted, Active: false,
			Registrations: registrations("4", "No-show")},
	}
}

// DemoMeetings returns the meetings loaded by Seed.
func DemoMeetings() []models.Meeting {
	return []models.Meeting{
		{ID: "1", Title: "Placement Drive Briefing", Date: date("2025-10-15"), Time: "10:00 AM", Location: "Auditorium", Attendees: 75},
		{ID: "2", Title: "Career Counseling Session", Date: date("2025-10-20"), Time: "2:00 PM", Location: "Room 301", Attendees: 40},
		{ID: "3", Title: "Resume Workshop", Date: date("2025-10-25"), Time: "11:00 AM", Location: "Lab 2", Attendees: 35},
	}
}

// DemoCourses returns the training courses loaded by Seed.
func DemoCourses() []models.Course {
	return []models.Course{
		{ID: "c1", Name: "Python for Data Science", Description: "Hands-on course covering Python, Pandas, NumPy, and data analysis.",
			DurationWeeks: 8, SkillsCovered: []string{"Python", "Pandas", "NumPy", "Data Analysis"}, Status: models.CourseStatusActive,
			Enrolled: []models.CourseEnrollment{{StudentID: "1", Progress: 85, Grade: "A"}, {StudentID: "3", Progress: 70, Grade: "B+"}, {StudentID: "5", Progress: 60}}},
		{ID: "c2", Name: "Aptitude Training", Description: "Quantitative aptitude, logical reasoning, and verbal ability.",
			DurationWeeks: 6, SkillsCovered: []string{"Quant", "LR", "Verbal"}, Status: models.CourseStatusActive,
			Enrolled: []models.CourseEnrollment{{StudentID: "1", Progress: 92, Grade: "A+"}, {StudentID: "2", Progress: 68, Grade: "B"}, {StudentID: "4", Progress: 40}}},
		{ID: "c3", Name: "Web Development Basics", Description: "HTML, CSS, JavaScript fundamentals and modern tooling.",
			DurationWeeks: 10, SkillsCovered: []string{"HTML", "CSS", "JavaScript"}, Status: models.CourseStatusInactive,
			Enrolled: []models.CourseEnrollment{{StudentID: "2", Progress: 55}, {StudentID: "5", Progress: 20}}},
	}
}

type creator[T any] interface {
	Create(ctx context.Context, item *T) error
}

// SeedTarget names the repositories fixtures are written to, so the same
// fixtures can seed the memory store or an empty postgres database.
type SeedTarget struct {
	Students      creator[models.Student]
	Drives        creator[models.Drive]
	Jobs          creator[models.Job]
	Colleges      creator[models.College]
	Departments   creator[models.Department]
	Notifications creator[models.Notification]
	Announcements creator[models.Announcement]
	Events        creator[models.DepartmentEvent]
	Meetings      creator[models.Meeting]
	Courses       creator[models.Course]
}

// Target returns the store's repositories as a SeedTarget.
func (s *Store) Target() SeedTarget {
	return TargetOf(s.Stores())
}

// TargetOf seeds through any set of repositories, such as a fresh postgres database.
func TargetOf(stores repository.Stores) SeedTarget {
	return SeedTarget{
		Students: stores.Students, Drives: stores.Drives, Jobs: stores.Jobs,
		Colleges: stores.Colleges, Departments: stores.Departments, Notifications: stores.Notifications,
		Announcements: stores.Announcements, Events: stores.Events, Meetings: stores.Meetings, Courses: stores.Courses,
	}
}

func seedAll[T any](ctx context.Context, repo creator[T], items []T, label func(T) string) error {
	for i := range items {
		if err := repo.Create(ctx, &items[i]); err != nil {
			return fmt.Errorf("seed %s: %w", label(items[i]), err)
		}
	}
	return nil
}

// Seed loads the demo fixtures through target.
func Seed(ctx context.Context, target SeedTarget, now time.Time) error {
	if err := seedAll(ctx, target.Students, DemoStudents(), func(s models.Student) string { return "student " + s.EnrollmentNumber }); err != nil {
		return err
	}
	if err := seedAll(ctx, target.Drives, DemoDrives(), func(d models.Drive) string { return "drive " + d.ID }); err != nil {
		return err
	}
	if err := seedAll(ctx, target.Jobs, DemoJobs(), func(j models.Job) string { return "job " + j.ID }); err != nil {
		return err
	}
	if err := seedAll(ctx, target.Colleges, DemoColleges(), func(c models.College) string { return "college " + c.ID }); err != nil {
		return err
	}
	if err := seedAll(ctx, target.Departments, DemoDepartments(), func(d models.Department) string { return "department " + d.ID }); err != nil {
		return err
	}
	if err := seedAll(ctx, target.Notifications, DemoNotifications(now), func(n models.Notification) string { return "notification " + n.ID }); err != nil {
		return err
	}
	if err := seedAll(ctx, target.Announcements, DemoAnnouncements(), func(a models.Announcement) string { return "announcement " + a.ID }); err != nil {
		return err
	}
	if err := seedAll(ctx, target.Events, DemoEvents(), func(e models.DepartmentEvent) string { return "event " + e.ID }); err != nil {
		return err
	}
	if err := seedAll(ctx, target.Meetings, DemoMeetings(), func(m models.Meeting) string { return "meeting " + m.ID }); err != nil {
		return err
	}
	return seedAll(ctx, target.Courses, DemoCourses(), func(c models.Course) string { return "course " + c.ID })
}
