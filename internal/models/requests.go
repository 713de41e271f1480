package models

// StudentRequest is the payload for creating or updating a student.
type StudentRequest struct {
	EnrollmentNumber  string   `json:"enrollment_number" validate:"required,max=64"`
	Name              string   `json:"name" validate:"required,max=128"`
	Email             string   `json:"email" validate:"required,email"`
	Phone             string   `json:"phone" validate:"omitempty,max=32"`
	Department        string   `json:"department" validate:"required,max=128"`
	Branch            string   `json:"branch" validate:"omitempty,max=64"`
	CGPA              *float64 `json:"cgpa" validate:"omitempty,gte=0,lte=10"`
	TenthPercent      *float64 `json:"tenth_percent" validate:"omitempty,gte=0,lte=100"`
	TwelfthPercent    *float64 `json:"twelfth_percent" validate:"omitempty,gte=0,lte=100"`
	GraduationPercent *float64 `json:"graduation_percent" validate:"omitempty,gte=0,lte=100"`
	GraduationPeriod  string   `json:"graduation_period" validate:"omitempty,max=32"`
	EducationGapYears *float64 `json:"education_gap_years" validate:"omitempty,gte=0"`
	Backlogs          *int     `json:"backlogs" validate:"omitempty,gte=0"`
	PastBacklogs      *int     `json:"past_backlogs" validate:"omitempty,gte=0"`
	Skills            []string `json:"skills" validate:"omitempty,dive,required"`
	ResumeURL         string   `json:"resume_url" validate:"omitempty,url"`
	Blacklisted       bool     `json:"blacklisted"`
	TenthMath         *float64 `json:"tenth_math" validate:"omitempty,gte=0,lte=100"`
	TwelfthMath       *float64 `json:"twelfth_math" validate:"omitempty,gte=0,lte=100"`
	TwelfthCS         *float64 `json:"twelfth_cs" validate:"omitempty,gte=0,lte=100"`
	HasDegree         *bool    `json:"has_degree"`
}

// Apply copies the request onto a student, leaving identity and counters alone.
func (r StudentRequest) Apply(student *Student) {
	student.EnrollmentNumber = r.EnrollmentNumber
	student.Name = r.Name
	student.Email = r.Email
	student.Phone = r.Phone
	student.Department = r.Department
	student.Branch = r.Branch
	student.CGPA = r.CGPA
	student.TenthPercent = r.TenthPercent
	student.TwelfthPercent = r.TwelfthPercent
	student.GraduationPercent = r.GraduationPercent
	student.GraduationPeriod = r.GraduationPeriod
	student.EducationGapYears = r.EducationGapYears
	student.Backlogs = r.Backlogs
	student.PastBacklogs = r.PastBacklogs
	student.Skills = r.Skills
	student.ResumeURL = r.ResumeURL
	student.Blacklisted = r.Blacklisted
	student.TenthMath = r.TenthMath
	student.TwelfthMath = r.TwelfthMath
	student.TwelfthCS = r.TwelfthCS
	student.HasDegree = r.HasDegree
}

// DriveRequest is the payload for announcing or editing a drive. Dates use YYYY-MM-DD.
type DriveRequest struct {
	Company     string        `json:"company" validate:"required,max=128"`
	Role        string        `json:"role" validate:"required,max=128"`
	CTCLpa      float64       `json:"ctc_lpa" validate:"gte=0"`
	DriveDate   string        `json:"drive_date" validate:"required,datetime=2006-01-02"`
	Deadline    string        `json:"deadline" validate:"omitempty,datetime=2006-01-02"`
	Description string        `json:"description" validate:"omitempty,max=2000"`
	Criteria    DriveCriteria `json:"criteria"`
	Status      DriveStatus   `json:"status" validate:"omitempty,oneof=Announced Open Closed Completed"`
}

// EligibilityCheckRequest evaluates ad-hoc criteria against every student.
type EligibilityCheckRequest struct {
	Criteria     DriveCriteria `json:"criteria"`
	OnlyEligible bool          `json:"only_eligible"`
}

// JobRequest is the payload for posting a job.
type JobRequest struct {
	Title       string   `json:"title" validate:"required,max=128"`
	Company     string   `json:"company" validate:"required,max=128"`
	Type        string   `json:"type" validate:"omitempty,oneof=Internship Full-time Part-time"`
	Department  string   `json:"department" validate:"omitempty,max=128"`
	Deadline    string   `json:"deadline" validate:"omitempty,datetime=2006-01-02"`
	Eligibility []string `json:"eligibility" validate:"omitempty,dive,required"`
}

// EnrollRequest names the student to enroll; students may omit it to enroll themselves.
type EnrollRequest struct {
	StudentID string `json:"student_id"`
}

// CollegeRequest is the payload for registering or editing a college.
type CollegeRequest struct {
	Name        string       `json:"name" validate:"required,max=128"`
	Code        string       `json:"code" validate:"required,max=32"`
	Domain      string       `json:"domain" validate:"omitempty,fqdn"`
	Contact     string       `json:"contact" validate:"omitempty,email"`
	Plan        CollegePlan  `json:"plan" validate:"omitempty,oneof=Standard Premium Enterprise"`
	Status      TenantStatus `json:"status" validate:"omitempty,oneof=Active Inactive"`
	Departments int          `json:"departments" validate:"gte=0"`
	Students    int          `json:"students" validate:"gte=0"`
	Jobs        int          `json:"jobs" validate:"gte=0"`
}

// DepartmentRequest is the payload for creating or editing a department.
type DepartmentRequest struct {
	CollegeID  string       `json:"college_id" validate:"omitempty,max=64"`
	Name       string       `json:"name" validate:"required,max=128"`
	HOD        string       `json:"hod" validate:"required,max=128"`
	Email      string       `json:"email" validate:"required,email"`
	Phone      string       `json:"phone" validate:"omitempty,max=32"`
	Students   int          `json:"students" validate:"gte=0"`
	ActiveJobs int          `json:"active_jobs" validate:"gte=0"`
	Status     TenantStatus `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

// AnnouncementRequest is the payload for publishing or editing an announcement.
// Date defaults to today and priority to medium.
type AnnouncementRequest struct {
	Title    string               `json:"title" validate:"required,max=200"`
	Content  string               `json:"content" validate:"required,max=5000"`
	Priority AnnouncementPriority `json:"priority" validate:"omitempty,priority"`
	Date     string               `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// EventRequest is the payload for creating or editing a department event.
type EventRequest struct {
	Title           string      `json:"title" validate:"required,max=200"`
	Description     string      `json:"description" validate:"omitempty,max=2000"`
	Type            EventType   `json:"type" validate:"required,oneof=Workshop Seminar Hackathon Training Webinar"`
	Date            string      `json:"date" validate:"required,datetime=2006-01-02"`
	Time            string      `json:"time" validate:"omitempty,datetime=15:04"`
	Location        string      `json:"location" validate:"omitempty,max=200"`
	OnlineLink      string      `json:"online_link" validate:"omitempty,url"`
	MaxParticipants *int        `json:"max_participants" validate:"omitempty,gt=0"`
	Status          EventStatus `json:"status" validate:"omitempty,oneof=Upcoming Ongoing Completed"`
	Active          *bool       `json:"active"`
	PosterURL       string      `json:"poster_url" validate:"omitempty,url"`
}

// RegistrationStatusRequest records attendance for one registered student.
type RegistrationStatusRequest struct {
	Status RegistrationStatus `json:"status" validate:"required,oneof=Registered Attended No-show"`
}

// MeetingRequest is the payload for scheduling a meeting.
type MeetingRequest struct {
	Title     string `json:"title" validate:"required,max=200"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Time      string `json:"time" validate:"required,max=32"`
	Location  string `json:"location" validate:"required,max=200"`
	Attendees int    `json:"attendees" validate:"gte=0"`
}

// CourseRequest is the payload for creating or editing a course.
type CourseRequest struct {
	Name          string       `json:"name" validate:"required,max=200"`
	Description   string       `json:"description" validate:"omitempty,max=2000"`
	DurationWeeks int          `json:"duration_weeks" validate:"gte=0,lte=104"`
	SkillsCovered []string     `json:"skills_covered" validate:"omitempty,dive,required"`
	Status        CourseStatus `json:"status" validate:"omitempty,oneof=Active Inactive Completed"`
}

// CourseProgressRequest sets a student's progress and optional grade in a course.
type CourseProgressRequest struct {
	Progress *int   `json:"progress" validate:"required,gte=0,lte=100"`
	Grade    string `json:"grade" validate:"omitempty,max=4"`
}
