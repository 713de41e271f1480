// Command rosterctl checks roster files offline: it reports rows the API
// would reject and evaluates drive criteria against the file's students.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/pflag"

	"github.com/ajs-hub/placement-api/internal/eligibility"
	"github.com/ajs-hub/placement-api/internal/models"
	"github.com/ajs-hub/placement-api/internal/roster"
)

const usage = `usage:
  rosterctl validate <file>
  rosterctl eligibility <file> [--min-tenth N] [--min-twelfth N] [--min-graduation N]
                               [--max-gap N] [--no-active-backlog] [--no-past-backlog]
                               [--skills A,B] [--only-eligible]
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}
	var err error
	switch args[0] {
	case "validate":
		err = validate(args[1:], stdout)
	case "eligibility":
		err = checkEligibility(args[1:], stdout)
	case "-h", "--help", "help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		err = fmt.Errorf("unknown command %q", args[0])
	}
	if err != nil {
		color.New(color.FgRed).Fprintf(stderr, "error: %v\n", err)
		if errors.Is(err, errUsage) {
			fmt.Fprint(stderr, usage)
		}
		return 1
	}
	return 0
}

var errUsage = errors.New("missing roster file")

// load imports the file with in-file duplicate detection and no store.
func load(path string) (*roster.Outcome, error) {
	seen := map[string]bool{}
	isDuplicate := func(enrollment string) bool { return seen[models.EnrollmentKey(enrollment)] }
	create := func(student *models.Student) error {
		seen[models.EnrollmentKey(student.EnrollmentNumber)] = true
		student.ID = student.EnrollmentNumber
		return nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return roster.ImportWorkbook(file, isDuplicate, create)
	}
	raw, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	return roster.Import(string(raw), isDuplicate, create)
}

func validate(args []string, out io.Writer) error {
	if len(args) != 1 {
		return errUsage
	}
	outcome, err := load(args[0])
	if err != nil {
		return err
	}

	if len(outcome.Errors) > 0 {
		table := tablewriter.NewWriter(out)
		table.SetHeader([]string{"Row", "Enrollment Number", "Reason"})
		for _, rowErr := range outcome.Errors {
			table.Append([]string{strconv.Itoa(rowErr.Row), rowErr.EnrollmentNumber, rowErr.Reason})
		}
		table.Render()
	}

	summary := color.New(color.FgGreen)
	if outcome.Rejected > 0 {
		summary = color.New(color.FgYellow)
	}
	summary.Fprintf(out, "%d accepted, %d rejected\n", outcome.Accepted, outcome.Rejected)
	return nil
}

func checkEligibility(args []string, out io.Writer) error {
	fs := pflag.NewFlagSet("eligibility", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	minTenth := fs.Float64("min-tenth", 0, "minimum 10th percentage")
	minTwelfth := fs.Float64("min-twelfth", 0, "minimum 12th percentage")
	minGrad := fs.Float64("min-graduation", 0, "minimum graduation percentage (CGPA x 10 when missing)")
	maxGap := fs.Float64("max-gap", 0, "maximum education gap in years")
	noActive := fs.Bool("no-active-backlog", false, "reject students with active backlogs")
	noPast := fs.Bool("no-past-backlog", false, "reject students with past backlogs")
	skills := fs.StringSlice("skills", nil, "required skills, comma separated")
	onlyEligible := fs.Bool("only-eligible", false, "print eligible students only")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errUsage
	}

	var criteria models.DriveCriteria
	if fs.Changed("min-tenth") {
		criteria.MinTenth = minTenth
	}
	if fs.Changed("min-twelfth") {
		criteria.MinTwelfth = minTwelfth
	}
	if fs.Changed("min-graduation") {
		criteria.MinGraduation = minGrad
	}
	if fs.Changed("max-gap") {
		criteria.MaxEducationGapYears = maxGap
	}
	if *noActive {
		criteria.AllowActiveBacklog = models.BoolPtr(false)
	}
	if *noPast {
		criteria.AllowPastBacklog = models.BoolPtr(false)
	}
	if len(*skills) > 0 {
		criteria.RequiredSkills = *skills
	}

	outcome, err := load(fs.Arg(0))
	if err != nil {
		return err
	}
	results := eligibility.EvaluateAll(eligibility.Structured{Criteria: criteria}, outcome.Created)

	yes := color.New(color.FgGreen).SprintFunc()
	no := color.New(color.FgRed).SprintFunc()
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Enrollment Number", "Name", "Eligible", "Unmet"})
	table.SetAutoWrapText(false)
	eligible := 0
	for _, res := range results {
		if res.Eligible {
			eligible++
		} else if *onlyEligible {
			continue
		}
		verdict := no("No")
		if res.Eligible {
			verdict = yes("Yes")
		}
		table.Append([]string{res.Student.EnrollmentNumber, res.Student.Name, verdict, strings.Join(res.Unmet, "; ")})
	}
	table.Render()
	fmt.Fprintf(out, "%d of %d students eligible\n", eligible, len(results))
	if outcome.Rejected > 0 {
		color.New(color.FgYellow).Fprintf(out, "%d rows skipped, run validate for details\n", outcome.Rejected)
	}
	return nil
}
